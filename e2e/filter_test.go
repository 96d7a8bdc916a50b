//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWithConsoles(t *testing.T, tf *TUITestFramework) *FakeBackend {
	t.Helper()
	backend := NewFakeBackend(t).WithProducts("console", consoles...)
	require.NoError(t, tf.StartApp(backend, "console"), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")
	require.True(t, tf.OutputContainsPlain("3 products", 5*time.Second), "Should show all products")
	return backend
}

func TestStoreFilterDoesNotRefetch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	backend := startWithConsoles(t, tf)
	before := len(backend.Requests())

	// Stores cycle in first-seen order: all -> Noon
	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyStore))

	require.True(t, tf.SeePlainSince(mark, "Noon"), "Store control should show Noon")
	require.True(t, tf.SeePlainSince(mark, "2 products"), "Only Noon products remain")
	require.True(t, tf.SeePlainSince(mark, "1 stores"), "One store remains")
	require.Equal(t, before, len(backend.Requests()), "Filtering must not hit the backend")
}

func TestSortByPriceDescending(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithConsoles(t, tf)

	// title -> price-asc -> price-desc
	require.NoError(t, tf.SendKeys(KeySort))
	time.Sleep(100 * time.Millisecond)
	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeySort))

	require.True(t, tf.SeePlainSince(mark, "Price: high to low"), "Sort control should change")
	require.True(t, tf.SeePlainSince(mark, "PlayStation 5 Slim"), "Most expensive product comes first")
}

func TestMaxPriceFilterAndReset(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithConsoles(t, tf)

	require.NoError(t, tf.SendKeys(KeyMax))
	time.Sleep(100 * time.Millisecond)
	mark := tf.Mark()
	require.NoError(t, tf.Type("22000"))
	require.NoError(t, tf.SendEnter())

	// 22,000 is inclusive: Xbox and Switch stay
	require.True(t, tf.SeePlainSince(mark, "2 products"), "Max price should filter live")
	require.True(t, tf.SeePlainSince(mark, "Max: 22,000"), "Max control should show the bound")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyReset))
	require.True(t, tf.SeePlainSince(mark, "3 products"), "Reset shows the full set again")
	require.True(t, tf.SeePlainSince(mark, "Max: -"), "Reset clears the bound")
}
