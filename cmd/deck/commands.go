package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-deck/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/handlers/sheet"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sheet of empty slots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		newScope, _ := cmd.Flags().GetBool("new")
		force, _ := cmd.Flags().GetBool("force")

		out, err := handler.Init(cmd.Context(), &sheet.InitInput{
			Scope:    cfg.Scope,
			NewScope: newScope,
			Force:    force,
		})
		if err != nil {
			return err
		}

		return printSheet(cmd.OutOrStdout(), out.Sheet)
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List the deck slots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := handler.ListSlots(cmd.Context(), &sheet.ListSlotsInput{Scope: cfg.Scope})
		if err != nil {
			return err
		}
		return printSlots(cmd.OutOrStdout(), out.Slots)
	},
}

var focusCmd = &cobra.Command{
	Use:   "focus <slot>",
	Short: "Toggle focus on a slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		out, err := handler.ToggleFocus(cmd.Context(), &sheet.ToggleFocusInput{
			Scope: cfg.Scope,
			Index: index,
		})
		if err != nil {
			return err
		}
		return printFocused(cmd.OutOrStdout(), out.Focused)
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace <slot> [card-id]",
	Short: "Replace the card in a slot; without a card ID the dialog is cancelled",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		cardID := ""
		if len(args) == 2 {
			cardID = args[1]
		}

		filters, err := readFilters(cmd)
		if err != nil {
			return err
		}

		out, err := handler.ReplaceCard(cmd.Context(), &sheet.ReplaceCardInput{
			Scope:   cfg.Scope,
			Index:   index,
			CardID:  cardID,
			Filters: filters,
		})
		if err != nil {
			return err
		}
		return printReplace(cmd.OutOrStdout(), index, out)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <slot> <top> <left> <right> <bottom>",
	Short: "Place the hover preview of a slot with the given screen bounds",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		coords := make([]float64, 4)
		for i, arg := range args[1:] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return errors.InvalidArgumentf("invalid coordinate %q", arg)
			}
			coords[i] = v
		}

		width, _ := cmd.Flags().GetFloat64("width")
		height, _ := cmd.Flags().GetFloat64("height")
		held, _ := cmd.Flags().GetStringSlice("hold")

		out, err := handler.Preview(cmd.Context(), &sheet.PreviewInput{
			Scope:    cfg.Scope,
			Index:    index,
			Bounds:   &card.Rect{Top: coords[0], Left: coords[1], Right: coords[2], Bottom: coords[3]},
			Viewport: card.Viewport{Width: width, Height: height},
			HeldKeys: held,
		})
		if err != nil {
			return err
		}
		return printPreview(cmd.OutOrStdout(), out)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Search the cards the replace dialog offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		filters, err := readFilters(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		out, err := handler.SearchCatalog(cmd.Context(), &sheet.SearchCatalogInput{
			Filters: filters,
			Limit:   limit,
		})
		if err != nil {
			return err
		}
		return printCards(cmd.OutOrStdout(), out.Cards)
	},
}

func init() {
	initCmd.Flags().Bool("new", false, "generate a new sheet ID instead of using --scope")
	initCmd.Flags().Bool("force", false, "replace an existing sheet")

	previewCmd.Flags().Float64("width", 1280, "viewport width")
	previewCmd.Flags().Float64("height", 800, "viewport height")
	previewCmd.Flags().StringSlice("hold", nil, "keys held while hovering")

	for _, cmd := range []*cobra.Command{replaceCmd, catalogCmd} {
		cmd.Flags().String("category", "", "card type or type name, or \"all\"")
		cmd.Flags().String("query", "", "text the card name must contain")
		cmd.Flags().StringSlice("class", nil, "classes to include")
		cmd.Flags().IntSlice("level", nil, "levels to include")
	}
	catalogCmd.Flags().Int("limit", 0, "maximum number of cards, 0 for all")
}

func readFilters(cmd *cobra.Command) (catalog.Filters, error) {
	flags := cmd.Flags()

	category, err := flags.GetString("category")
	if err != nil {
		return catalog.Filters{}, err
	}
	query, err := flags.GetString("query")
	if err != nil {
		return catalog.Filters{}, err
	}
	classes, err := flags.GetStringSlice("class")
	if err != nil {
		return catalog.Filters{}, err
	}
	levels, err := flags.GetIntSlice("level")
	if err != nil {
		return catalog.Filters{}, err
	}

	return catalog.Filters{
		Category: category,
		Query:    query,
		Classes:  classes,
		Levels:   levels,
	}, nil
}

func parseSlot(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.InvalidArgumentf("slot must be a number, got %q", arg)
	}
	return index, nil
}
