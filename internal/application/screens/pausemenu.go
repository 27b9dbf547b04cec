package screens

import "log"

// NewPauseMenu creates the in-game pause menu, layered as a popup over the
// gameplay screen so gameplay stays visible (but unfocused) behind it.
func NewPauseMenu() *MenuScreen {
	menu := NewMenuScreen("Paused")
	menu.SetPopup(true)

	menu.AddEntry("Resume", func() {
		menu.Exit(menu)
	})

	menu.AddEntry("Quit to Menu", func() {
		confirm := NewMessageBox("Quit to the main menu?")
		confirm.OnAccept = func() {
			stack := menu.Manager()
			if stack == nil {
				return
			}
			// Tear down everything, including this menu and the box
			// itself, then rebuild the menu screens. The box's own
			// exit becomes a harmless no-op remove.
			for _, s := range stack.Screens() {
				stack.Remove(s)
			}
			if err := stack.Add(NewBackgroundScreen()); err != nil {
				log.Printf("rebuild menu stack: %v", err)
			}
			if err := stack.Add(NewMainMenu()); err != nil {
				log.Printf("rebuild menu stack: %v", err)
			}
		}
		if stack := menu.Manager(); stack != nil {
			if err := stack.Add(confirm); err != nil {
				log.Printf("open quit confirmation: %v", err)
			}
		}
	})

	menu.OnCancel = func() {
		menu.Exit(menu)
	}

	return menu
}
