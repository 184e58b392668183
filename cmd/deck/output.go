package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/rpg-deck/internal/entities"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/handlers/sheet"
	"github.com/KirkDiggler/rpg-deck/internal/services/cardmodel"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotview"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSheet(w io.Writer, s *entities.Sheet) error {
	if jsonOut {
		return printJSON(w, map[string]any{
			"scope":      s.ID,
			"slots":      len(s.Cards),
			"created_at": s.CreatedAt,
		})
	}
	_, err := fmt.Fprintf(w, "Sheet %s ready with %d slots\n", s.ID, len(s.Cards))
	return err
}

func printSlots(w io.Writer, views []slotview.View) error {
	if jsonOut {
		return printJSON(w, views)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tLABEL\tCARD\tTYPE\tSUMMARY\tFOCUS")
	for _, v := range views {
		name := v.Name
		if v.Empty {
			name = "-"
		}
		label := v.Label
		if v.Special {
			label += " *"
		}
		focus := ""
		if v.Focused {
			focus = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.Index, label, name, v.TypeLabel, joinSummary(v.Summary), focus)
	}
	return tw.Flush()
}

func printFocused(w io.Writer, focused []int) error {
	if jsonOut {
		return printJSON(w, map[string]any{"focused": focused})
	}
	if len(focused) == 0 {
		_, err := fmt.Fprintln(w, "No focused slots")
		return err
	}
	_, err := fmt.Fprintf(w, "Focused slots: %v\n", focused)
	return err
}

func printReplace(w io.Writer, index int, out *sheet.ReplaceCardOutput) error {
	if jsonOut {
		result := map[string]any{
			"slot":      index,
			"cancelled": out.Cancelled,
		}
		if out.Card != nil {
			result["card"] = cardmodel.ToMap(*out.Card)
		}
		return printJSON(w, result)
	}
	if out.Cancelled {
		_, err := fmt.Fprintf(w, "Slot %d unchanged\n", index)
		return err
	}
	_, err := fmt.Fprintf(w, "Slot %d now holds %s (%s)\n", index, out.Card.Name, out.Card.ID)
	return err
}

func printPreview(w io.Writer, out *sheet.PreviewOutput) error {
	css := out.Placement.CSS()
	if jsonOut {
		return printJSON(w, map[string]any{
			"hovered":     out.Hovered,
			"alt_pressed": out.AltPressed,
			"style":       css,
		})
	}
	if out.Placement.Empty() {
		_, err := fmt.Fprintln(w, "No preview")
		return err
	}

	keys := []string{"position", "top", "left", "right", "max-height", "overflow-y", "z-index"}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v, ok := css[k]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", k, v))
		}
	}
	_, err := fmt.Fprintf(w, "%s;\nalt pressed: %t\n", strings.Join(parts, "; "), out.AltPressed)
	return err
}

func printCards(w io.Writer, cards []card.Card) error {
	if jsonOut {
		out := make([]map[string]any, len(cards))
		for i, c := range cards {
			out[i] = cardmodel.ToMap(c)
		}
		return printJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCLASS\tLEVEL\tSUMMARY")
	for _, c := range cards {
		level := ""
		if c.Level > 0 {
			level = fmt.Sprint(c.Level)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, cardmodel.TypeName(cardmodel.ResolveEffectiveType(c)), c.Class, level, joinSummary(c.Summary))
	}
	return tw.Flush()
}

func joinSummary(summary [card.SummarySize]string) string {
	parts := make([]string, 0, card.SummarySize)
	for _, s := range summary {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
