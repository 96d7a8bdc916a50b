package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pricegrip/internal/ui/input/types"
)

// PriceMode edits one bound of the price filter. Every keystroke is applied
// to the view right away.
type PriceMode struct {
	TextInputMode
}

func NewMinPriceMode(ti *textinput.Model) *PriceMode {
	return &PriceMode{
		TextInputMode: NewTextInputMode(types.ModeMinPrice, "min-price", "Min price: ", ti),
	}
}

func NewMaxPriceMode(ti *textinput.Model) *PriceMode {
	return &PriceMode{
		TextInputMode: NewTextInputMode(types.ModeMaxPrice, "max-price", "Max price: ", ti),
	}
}
