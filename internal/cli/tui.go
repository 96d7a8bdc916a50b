package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pricegrip/internal/clipboard"
	"pricegrip/internal/controller"
	"pricegrip/internal/eventbus"
	"pricegrip/internal/output"
	"pricegrip/internal/results"
	"pricegrip/internal/ui"
)

// runTUI starts the interactive search. args form an optional initial query.
func (a *app) runTUI(ctx context.Context, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := eventbus.New()

	ctrl := controller.New(a.client(), results.NewStore(), ui.NewBusDisplay(bus),
		controller.WithLogger(a.logger),
		controller.WithTrendingLimit(a.cfg.UISettings.TrendingLimit),
		controller.WithClipboard(clipboard.New(os.Stdout)),
	)

	model := ui.NewModel(ctx, ctrl, a.cfg, ui.Options{
		InitialQuery: strings.Join(args, " "),
		Logger:       a.logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward display events to the UI in publish order
	eventChan := make(chan eventbus.DomainEvent, 100)
	var unsubscribe []func()
	for _, eventType := range ui.UIEvents {
		unsubscribe = append(unsubscribe, bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				a.logger.Warn("event channel full, dropping event", "type", e.Type())
			}
		}))
	}
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	go ctrl.LoadTrendingTerms(ctx)

	a.logger.Info("starting UI", "base_url", a.cfg.BaseURL)
	_, err := p.Run()
	ctrl.Cancel()

	for _, fn := range unsubscribe {
		fn()
	}
	bus.Close()
	close(eventChan)

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.logger.Info("UI stopped by signal")
			return nil
		}
		a.logger.Error("error running program", "error", err)
		return &output.CLIError{
			Summary:  "Interactive session failed",
			Detail:   err.Error(),
			ExitCode: output.ExitGeneral,
			Err:      err,
		}
	}
	a.logger.Info("UI exited normally")
	return nil
}
