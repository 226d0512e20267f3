package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	TypeDoor      = "DOOR"
	TransomNone   = "None"
	DoorMinHeight = 80
)

type Handing string

const (
	HandingNone Handing = "NONE"
	HandingLH   Handing = "LH"
	HandingRH   Handing = "RH"
)

type Swing string

const (
	SwingNone Swing = "NONE"
	SwingIS   Swing = "IS"
	SwingOS   Swing = "OS"
)

// Item is one line of the takeoff. Width and height are in inches.
type Item struct {
	ID       string
	Qty      int
	Width    int
	Height   int
	Type     string
	Tempered bool
	Drywall  bool
	Transom  string
	Handing  Handing
	Swing    Swing
}

// Draft is an item that has not been added to a list yet.
type Draft struct {
	Qty      int
	Width    int
	Height   int
	Type     string
	Tempered bool
	Drywall  bool
	Transom  string
	Handing  Handing
	Swing    Swing
}

// JobInfo is the header exported with every row.
type JobInfo struct {
	Address    string
	WindowSpec string
	DoorSpec   string
}

// IsDoor reports whether the draft describes a door.
func (d Draft) IsDoor() bool {
	return d.Type == TypeDoor
}

// Normalize forces door-only attributes to NONE for other types and fills
// blank fields with their neutral value.
func (d Draft) Normalize() Draft {
	if d.Qty < 1 {
		d.Qty = 1
	}
	if d.Transom == "" {
		d.Transom = TransomNone
	}
	if !d.IsDoor() {
		d.Handing = HandingNone
		d.Swing = SwingNone
	}
	if d.Handing == "" {
		d.Handing = HandingNone
	}
	if d.Swing == "" {
		d.Swing = SwingNone
	}
	return d
}

func (d Draft) item() Item {
	d = d.Normalize()
	return Item{
		ID:       uuid.NewString(),
		Qty:      d.Qty,
		Width:    d.Width,
		Height:   d.Height,
		Type:     d.Type,
		Tempered: d.Tempered,
		Drywall:  d.Drywall,
		Transom:  d.Transom,
		Handing:  d.Handing,
		Swing:    d.Swing,
	}
}

// SizeCode renders width and height as feet and inches digits, so 36x60
// becomes "3050" and 30x82 becomes "26610".
func SizeCode(width, height int) string {
	return fmt.Sprintf("%d%d%d%d", width/12, width%12, height/12, height%12)
}

// LabelParts returns the non-empty parts of an item's shorthand label.
func LabelParts(it Item) []string {
	parts := []string{SizeCode(it.Width, it.Height), it.Type}
	if it.Transom != "" && it.Transom != TransomNone {
		parts = append(parts, it.Transom+" TR")
	}
	if it.Drywall {
		parts = append(parts, "DRY")
	}
	if it.Tempered {
		parts = append(parts, "TMP")
	}
	if it.Type == TypeDoor {
		if it.Handing != "" && it.Handing != HandingNone {
			parts = append(parts, string(it.Handing))
		}
		if it.Swing != "" && it.Swing != SwingNone {
			parts = append(parts, string(it.Swing))
		}
	}
	return parts
}

// Label joins the label parts with a bullet separator.
func Label(it Item) string {
	return strings.Join(LabelParts(it), " • ")
}
