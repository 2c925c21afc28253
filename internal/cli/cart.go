package cli

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/wanderkit/tripdesk/internal/activity"
	"github.com/wanderkit/tripdesk/internal/cart"
	"github.com/wanderkit/tripdesk/internal/storage"
)

// cartSlot is the store slot the CLI cart serializes into. The cart itself
// is an in-memory session structure; the CLI persists it between invocations
// so add/remove/list compose.
const cartSlot = "cart-items"

// NewCartCmd creates the 'cart' command group.
func NewCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the persisted cart",
		Long:  `Add, remove, and list cart lines. The cart holds at most one line per (item, type) pair.`,
	}

	cmd.AddCommand(newCartAddCmd(), newCartRemoveCmd(), newCartListCmd())

	return cmd
}

func newCartAddCmd() *cobra.Command {
	var travelType string
	var name string
	var destination string
	var price float64
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <item-id>",
		Short: "Add an item to the cart",
		Example: `  tripdesk cart add F100 --type flight --name "NRT round trip" --destination Kyoto --price 820
  tripdesk cart add H220 --type hotel --quantity 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartAdd(args[0], travelType, name, destination, price, quantity)
		},
	}

	cmd.Flags().StringVarP(&travelType, "type", "t", "package", "Travel type (flight, hotel, car, package)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&destination, "destination", "", "Destination the item belongs to")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity")

	return cmd
}

func newCartRemoveCmd() *cobra.Command {
	var travelType string

	cmd := &cobra.Command{
		Use:     "remove <item-id>",
		Short:   "Remove an item from the cart",
		Example: `  tripdesk cart remove F100 --type flight`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartRemove(args[0], travelType)
		},
	}

	cmd.Flags().StringVarP(&travelType, "type", "t", "package", "Travel type (flight, hotel, car, package)")

	return cmd
}

func newCartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartList()
		},
	}
}

func runCartAdd(itemID, travelType, name, destination string, price float64, quantity int) error {
	store := openStore(loadConfig(), false)
	defer store.Close()

	c := loadCart(store)

	if c.Contains(itemID, activity.TravelType(travelType)) {
		fmt.Printf("%s (%s) is already in the cart.\n", itemID, travelType)
		return nil
	}

	c.Add(cart.Item{
		ID:          itemID,
		Type:        activity.TravelType(travelType),
		Name:        name,
		Destination: destination,
		Price:       price,
		Quantity:    quantity,
	})

	if err := saveCart(store, c); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s). Cart holds %d items.\n", itemID, travelType, c.ItemCount())
	return nil
}

func runCartRemove(itemID, travelType string) error {
	store := openStore(loadConfig(), false)
	defer store.Close()

	c := loadCart(store)

	if !c.Contains(itemID, activity.TravelType(travelType)) {
		fmt.Printf("%s (%s) is not in the cart.\n", itemID, travelType)
		return nil
	}

	c.Remove(itemID, activity.TravelType(travelType))

	if err := saveCart(store, c); err != nil {
		return err
	}

	fmt.Printf("Removed %s (%s). Cart holds %d items.\n", itemID, travelType, c.ItemCount())
	return nil
}

func runCartList() error {
	store := openStore(loadConfig(), false)
	defer store.Close()

	c := loadCart(store)

	items := c.Items()
	if len(items) == 0 {
		fmt.Println("The cart is empty.")
		return nil
	}

	fmt.Printf("Cart (%d items, total %.2f):\n\n", c.ItemCount(), c.Total())
	for _, item := range items {
		label := item.Name
		if label == "" {
			label = item.ID
		}
		fmt.Printf("  %-24s %-8s x%d  %.2f\n", label, item.Type, item.Quantity, item.Price*float64(item.Quantity))
	}

	return nil
}

// loadCart rebuilds the cart from its store slot. A missing or corrupt slot
// yields an empty cart; corruption is logged and discarded, same as the
// activity ledger.
func loadCart(store storage.Store) *cart.Store {
	c := cart.New()

	payload, ok, err := store.Load(cartSlot)
	if err != nil {
		log.Printf("Warning: failed to load cart: %v", err)
		return c
	}
	if !ok {
		return c
	}

	var items []cart.Item
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		log.Printf("Warning: discarding corrupt cart: %v", err)
		return c
	}

	for _, item := range items {
		c.Add(item)
	}
	return c
}

// saveCart serializes the cart lines into the store slot.
func saveCart(store storage.Store, c *cart.Store) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := store.Save(cartSlot, string(data)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
