//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("ChoiceParse", js.FuncOf(parse))
	js.Global().Set("ChoiceContains", js.FuncOf(contains))

	// Keep WASM running
	<-make(chan struct{})
}
