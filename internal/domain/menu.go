package domain

// MenuID enumerates the states of the interactive menu loop.
type MenuID string

const (
	MenuMain        MenuID = "main"
	MenuNetwork     MenuID = "network"
	MenuMaintenance MenuID = "maintenance"
	MenuReports     MenuID = "reports"
	MenuQuit        MenuID = "quit"
)
