//go:build ignore

package main

import (
	"fmt"

	"github.com/zhubert/canvas/internal/clipboard"
)

func main() {
	if err := clipboard.Init(); err != nil {
		fmt.Printf("Init error: %v\n", err)
		return
	}
	fmt.Println("Testing clipboard round trip...")
	if err := clipboard.WriteText("canvas clipboard check"); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}
	text, err := clipboard.ReadText()
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}
	fmt.Printf("Read back %q\n", text)
}
