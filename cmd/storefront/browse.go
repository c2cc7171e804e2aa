package main

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive storefront session",
		Long: `An interactive session over the same cart slot the one-shot commands use.
Events are processed one at a time on a single loop; Ctrl-C or "quit" leaves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx, cancel := shutdown.WithSignals(cmd.Context())
			defer cancel()
			return runBrowse(ctx, a)
		},
	}
}

func runBrowse(ctx context.Context, a *app) error {
	fmt.Println("storefront — type 'help' for commands")

	events := make(chan string)
	go func() {
		defer close(events)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			select {
			case events <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case line, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := handleEvent(ctx, a, events, line)
			if err != nil {
				fmt.Printf("error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

func handleEvent(ctx context.Context, a *app, events <-chan string, line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "help":
		fmt.Print(`commands:
  products [category]     list products, optionally filtered by category
  categories              list the catalog categories
  cart                    show the cart
  add <id> [qty]          add a product
  remove <id>             remove a line item
  qty <id> <n>            set a line item quantity
  checkout                place an order (prompts for the form)
  quit                    leave
`)
		return false, nil

	case "products":
		filter := catalog.Filter{}
		if len(args) > 1 {
			filter = catalog.FilterFromQuery(url.Values{"category": {args[1]}})
		}
		return false, runProducts(ctx, a, filter)

	case "categories":
		return false, runCategories(ctx, a)

	case "cart":
		store := a.cartStore(ctx)
		a.term.RenderCart(store.View())
		return false, nil

	case "add":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: add <id> [qty]")
		}
		id, err := parseProductID(args[1])
		if err != nil {
			return false, err
		}
		qty := int64(1)
		if len(args) > 2 {
			qty, err = strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return false, fmt.Errorf("invalid quantity %q", args[2])
			}
		}
		return false, runAdd(ctx, a, id, qty)

	case "remove":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: remove <id>")
		}
		id, err := parseProductID(args[1])
		if err != nil {
			return false, err
		}
		store := a.cartStore(ctx)
		return false, store.Remove(ctx, id)

	case "qty":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: qty <id> <n>")
		}
		id, err := parseProductID(args[1])
		if err != nil {
			return false, err
		}
		n, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return false, fmt.Errorf("invalid quantity %q", args[2])
		}
		store := a.cartStore(ctx)
		return false, store.SetQuantity(ctx, id, n)

	case "checkout":
		form, ok := promptForm(ctx, events)
		if !ok {
			return true, nil
		}
		return false, runCheckout(ctx, a, form)

	case "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", args[0])
	}
}

// promptForm reads the checkout form fields one input event at a time from
// the session's event stream. ok is false when the session ended mid-form.
func promptForm(ctx context.Context, events <-chan string) (form map[string]string, ok bool) {
	form = make(map[string]string, len(formFieldFlags))
	for _, f := range formFieldFlags {
		fmt.Printf("%s: ", f.usage)
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil, false
		case line, open := <-events:
			if !open {
				return nil, false
			}
			form[f.field] = strings.TrimSpace(line)
		}
	}
	return form, true
}
