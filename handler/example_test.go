package handler_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/prettylog/prettylog/core"
	"github.com/prettylog/prettylog/handler"
)

func ExampleNewConsoleHandler() {
	var out, errStream bytes.Buffer

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Out: &out,
		Err: &errStream,
		Min: core.InfoLevel,
		Overrides: []handler.TargetOverride{
			{Target: "db", Min: core.TraceLevel},
		},
	})
	defer h.Close()

	h.Log(core.DebugLevel, "app", "dropped by the global minimum")
	h.Log(core.TraceLevel, "db", "accepted by the db override")
	h.Log(core.ErrorLevel, "app", "routed to the error stream")

	fmt.Println(strings.Contains(out.String(), "accepted by the db override"))
	fmt.Println(strings.Contains(errStream.String(), "routed to the error stream"))
	fmt.Println(strings.Contains(out.String(), "dropped"))
	// Output:
	// true
	// true
	// false
}
