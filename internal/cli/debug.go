package cli

import (
	"fmt"
	"sort"
)

// DebugCmd dumps the raw store keys. Hidden; for troubleshooting state.
type DebugCmd struct{}

func (c *DebugCmd) Run(ctx *Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list store keys: %w", err)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}
