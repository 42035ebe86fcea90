package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details
)

// Command Listing Colors
var (
	HeaderColor      = color.New(color.FgGreen, color.Bold).SprintFunc()
	CommandNameColor = color.New(color.FgYellow).SprintFunc()
)
