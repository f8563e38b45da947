package components

import "github.com/rivo/tview"

// Copyright is the footer attribution line.
const Copyright = "© 2026 RTL - hola@raultrujillo.com"

// NewFooter builds the footer: attribution, key help and the connection
// indicator. The indicator is static text, not a health check.
func NewFooter(help string) *tview.TextView {
	footer := tview.NewTextView()
	footer.SetBorder(true)
	footer.SetDynamicColors(true)
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetText(Copyright + "  |  " + help + "  |  [#10b981]●[-] Conectado")
	return footer
}
