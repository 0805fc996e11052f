package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// runREPL executes stack commands from r line by line, writing results to w,
// until "exit" or end of input.
func runREPL(r io.Reader, w io.Writer, logger *slog.Logger) error {
	stack := newStringStack()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "push":
			stack.push(arg)
			fmt.Fprintln(w, "ok")
			logger.Debug("pushed entry", "size", stack.size())
		case "pop":
			v, ok := stack.pop()
			if !ok {
				fmt.Fprintln(w, "error")
				continue
			}
			fmt.Fprintln(w, v)
		case "back":
			v, ok := stack.back()
			if !ok {
				fmt.Fprintln(w, "error")
				continue
			}
			fmt.Fprintln(w, v)
		case "size":
			fmt.Fprintln(w, stack.size())
		case "clear":
			stack.clear()
			fmt.Fprintln(w, "ok")
		case "exit":
			fmt.Fprintln(w, "bye")
			return nil
		case "":
			// Blank line, nothing to do.
		default:
			logger.Warn("unknown command", "command", cmd)
		}
	}
	return scanner.Err()
}
