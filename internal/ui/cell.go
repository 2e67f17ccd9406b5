package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecell/internal/mailbox"
)

// messageCell is the content of a row: sender, subject, preview and markers
type messageCell struct {
	sender   *widget.Label
	received *widget.Label
	subject  *widget.Label
	preview  *widget.Label
	unread   *canvas.Circle
	flag     *widget.Label
	root     *fyne.Container
}

func newMessageCell(msg mailbox.Message) *messageCell {
	c := &messageCell{
		sender:   widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		received: widget.NewLabel(""),
		subject:  widget.NewLabel(""),
		preview:  widget.NewLabel(""),
		unread:   canvas.NewCircle(color.Transparent),
		flag:     widget.NewLabel(""),
	}
	c.preview.Truncation = fyne.TextTruncateEllipsis
	c.subject.Truncation = fyne.TextTruncateEllipsis
	c.received.Importance = widget.LowImportance
	c.preview.Importance = widget.LowImportance

	dot := container.NewGridWrap(fyne.NewSize(10, 10), c.unread)
	header := container.NewBorder(nil, nil, container.NewHBox(container.NewCenter(dot), c.sender), container.NewHBox(c.flag, c.received))
	c.root = container.NewPadded(container.NewVBox(header, c.subject, c.preview))
	c.update(msg)
	return c
}

func (c *messageCell) object() fyne.CanvasObject {
	return c.root
}

func (c *messageCell) update(msg mailbox.Message) {
	c.sender.SetText(msg.Sender)
	c.received.SetText(msg.ReceivedAt.Format(TimeLayout))
	c.subject.SetText(msg.Subject)
	c.preview.SetText(msg.Preview)

	if msg.Unread {
		c.unread.FillColor = theme.Color(theme.ColorNamePrimary)
	} else {
		c.unread.FillColor = color.Transparent
	}
	c.unread.Refresh()

	if msg.Flagged {
		c.flag.SetText(IconFlag)
	} else {
		c.flag.SetText("")
	}
}

// spacer keeps the list from collapsing when the inbox is empty
func emptyPlaceholder(text string) fyne.CanvasObject {
	return container.NewVBox(layout.NewSpacer(), widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}), layout.NewSpacer())
}
