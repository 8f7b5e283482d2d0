package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

var inventoryCmd = &cobra.Command{
	Use:     "inventory",
	Aliases: []string{"inv"},
	Short:   "Manage phoneme inventories",
	Long: `List, view, add or remove phoneme inventories, and query them by
natural class. The built-in english-us inventory is read-only.`,
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventories",
	Args:  cobra.NoArgs,
	RunE:  runInventoryList,
}

var inventoryShowCmd = &cobra.Command{
	Use:   "show [id-or-name]",
	Short: "Show an inventory and its symbols",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryShow,
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add [name] [symbol...]",
	Short: "Add an inventory",
	Long: `Add a named inventory of IPA symbols. Every symbol must be readable.

Example:
  phonet inventory add "Spanish stops" p b t d k g`,
	Args: cobra.MinimumNArgs(2),
	RunE: runInventoryAdd,
}

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove [id-or-name]",
	Short: "Remove an inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryRemove,
}

var inventoryGeneralizeCmd = &cobra.Command{
	Use:   "generalize [id-or-name]",
	Short: "Find the natural class covering an inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryGeneralize,
}

var inventoryFilterCmd = &cobra.Command{
	Use:   "filter [id-or-name]",
	Short: "List the inventory sounds matching a pattern",
	Long: `List the sounds of an inventory that belong to the pattern described by
the feature flags. Flags left out are unmarked.

Example:
  phonet inventory filter english-us --manner plosive --airstream pulmonic_egressive`,
	Args: cobra.ExactArgs(1),
	RunE: runInventoryFilter,
}

var (
	inventoryDescription string
	filterFlags          featureFlags
)

func init() {
	inventoryAddCmd.Flags().StringVarP(&inventoryDescription, "description", "d", "", "inventory description")
	filterFlags.bind(inventoryFilterCmd, domain.Features{Kind: domain.KindConsonant})

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryShowCmd)
	inventoryCmd.AddCommand(inventoryAddCmd)
	inventoryCmd.AddCommand(inventoryRemoveCmd)
	inventoryCmd.AddCommand(inventoryGeneralizeCmd)
	inventoryCmd.AddCommand(inventoryFilterCmd)
	rootCmd.AddCommand(inventoryCmd)
}

func runInventoryList(cmd *cobra.Command, _ []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	inventories, err := inventoryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list inventories: %w", err)
	}

	if wantJSON() {
		return printJSON(cmd, inventories)
	}

	cmd.Println("Inventories:")
	cmd.Println()
	for i := range inventories {
		inv := &inventories[i]
		cmd.Printf("  %s\n", inv.ID)
		cmd.Printf("    Name: %s\n", inv.Name)
		if inv.Description != "" {
			cmd.Printf("    Description: %s\n", inv.Description)
		}
		cmd.Printf("    Symbols: %d\n", len(inv.Symbols))
		if inv.Builtin {
			cmd.Println("    Built-in: yes")
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d inventories\n", len(inventories))
	return nil
}

func runInventoryShow(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	inv, err := inventoryService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get inventory: %w", err)
	}

	if wantJSON() {
		return printJSON(cmd, inv)
	}

	cmd.Printf("Inventory: %s\n\n", inv.Name)
	cmd.Printf("  ID:       %s\n", inv.ID)
	if inv.Description != "" {
		cmd.Printf("  About:    %s\n", inv.Description)
	}
	if inv.Builtin {
		cmd.Println("  Built-in: yes")
	} else {
		cmd.Printf("  Created:  %s\n", inv.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	cmd.Printf("  Symbols:  %s\n", strings.Join(inv.Symbols, " "))
	return nil
}

func runInventoryAdd(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	inv, err := inventoryService.Create(cmd.Context(), args[0], inventoryDescription, args[1:])
	if err != nil {
		return fmt.Errorf("failed to add inventory: %w", err)
	}

	if wantJSON() {
		return printJSON(cmd, inv)
	}
	cmd.Printf("Added inventory %q (%s) with %d symbols\n", inv.Name, inv.ID, len(inv.Symbols))
	return nil
}

func runInventoryRemove(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	if err := inventoryService.Remove(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrReadOnly) {
			return fmt.Errorf("inventory %q is built in and cannot be removed", args[0])
		}
		return fmt.Errorf("failed to remove inventory: %w", err)
	}

	cmd.Printf("Removed inventory: %s\n", args[0])
	return nil
}

func runInventoryGeneralize(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	class, err := inventoryService.Generalize(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to generalize inventory: %w", err)
	}

	if wantJSON() {
		return printJSON(cmd, class)
	}
	printClass(cmd, class)
	return nil
}

func runInventoryFilter(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	pattern, err := filterFlags.phonet()
	if err != nil {
		return err
	}

	matches, err := inventoryService.Filter(cmd.Context(), args[0], pattern)
	if err != nil {
		return fmt.Errorf("failed to filter inventory: %w", err)
	}

	if wantJSON() {
		if matches == nil {
			matches = []domain.Realization{}
		}
		return printJSON(cmd, matches)
	}

	if len(matches) == 0 {
		cmd.Printf("No sounds in %s match %s\n", args[0], pattern)
		return nil
	}
	cmd.Printf("Sounds matching %s:\n", pattern)
	printRealizations(cmd, matches)
	return nil
}
