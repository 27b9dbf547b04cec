package screens

import "log"

// NewMainMenu creates the top-level menu: start the gameplay screen or exit
// the application by emptying the stack.
func NewMainMenu() *MenuScreen {
	menu := NewMenuScreen("Main Menu")

	menu.AddEntry("Play", func() {
		stack := menu.Manager()
		if stack == nil {
			return
		}
		if err := stack.Add(NewGameplayScreen()); err != nil {
			log.Printf("start gameplay: %v", err)
			return
		}
		menu.Exit(menu)
	})

	menu.AddEntry("Exit", func() {
		confirmExit(menu)
	})

	menu.OnCancel = func() {
		confirmExit(menu)
	}

	return menu
}

// confirmExit pops the exit confirmation box. Accepting removes every screen;
// the host quits once the stack is empty.
func confirmExit(menu *MenuScreen) {
	stack := menu.Manager()
	if stack == nil {
		return
	}

	confirm := NewMessageBox("Exit the demo?")
	confirm.OnAccept = func() {
		for _, s := range stack.Screens() {
			stack.Remove(s)
		}
	}

	if err := stack.Add(confirm); err != nil {
		log.Printf("open exit confirmation: %v", err)
	}
}
