package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or "exit"/"quit".
// Command handlers report their own errors; the loop stays alive.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("stock> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, add, edit <id>, delete <id>, export <file>, import <file>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "register":
			if err := a.Register(ctx); err != nil {
				printlnFn("register failed:", err)
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				printlnFn("login failed:", err)
			}
		case "logout":
			_ = a.Logout(ctx)
		case "list", "ls":
			if requireLogin(a) {
				_ = a.List(ctx, args)
			}
		case "add":
			if requireLogin(a) {
				_ = a.Add(ctx)
			}
		case "edit":
			if requireLogin(a) {
				_ = a.Edit(ctx, args)
			}
		case "delete", "rm":
			if requireLogin(a) {
				_ = a.Delete(ctx, args)
			}
		case "export":
			if requireLogin(a) {
				_ = a.Export(ctx, args)
			}
		case "import":
			if requireLogin(a) {
				_ = a.Import(ctx, args)
			}
		case "exit", "quit":
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}
