package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/polkiloo/cafeorders/internal/client"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	pkgAuth "github.com/polkiloo/cafeorders/internal/pkg/auth"
)

const (
	defaultServer = "http://localhost:8080"
	usage         = `usage: orderctl [-s server] [-k admin-key] <command> [args]

commands:
  list [-search term]            list orders with status counts
  stats                          show status counts
  show <id>                      show one order
  set-status <id> <status>       move an order to status (-notes to add notes)
  note <id> <text>               replace order notes
  delete [-yes] <id>             delete an order after confirmation
  track <order-number>           show the customer view of an order
  hash-key <key>                 print a bcrypt hash for ADMIN_KEY_HASH
`
)

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	lookup func(string) (string, bool)
}

func (c *cli) env(key, def string) string {
	if v, ok := c.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (c *cli) run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("orderctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	server := fs.String("s", c.env("ORDERCTL_SERVER", defaultServer), "API base URL")
	adminKey := fs.String("k", c.env("ORDERCTL_ADMIN_KEY", ""), "Admin key")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		fmt.Fprint(c.stderr, usage)
		return 2
	}

	command, rest := fs.Arg(0), fs.Args()[1:]
	if command == "hash-key" {
		return c.report(c.hashKey(rest))
	}

	api, err := client.NewAPI(*server, client.WithAdminKey(*adminKey))
	if err != nil {
		return c.report(err)
	}
	notices := &client.NoticeLog{}
	admin := client.NewAdminSurface(api, notices)

	switch command {
	case "list":
		err = c.list(ctx, admin, rest)
	case "stats":
		err = c.stats(ctx, admin)
	case "show":
		err = c.show(ctx, admin, rest)
	case "set-status":
		err = c.setStatus(ctx, admin, rest)
	case "note":
		err = c.note(ctx, admin, rest)
	case "delete":
		err = c.delete(ctx, admin, rest)
	case "track":
		err = c.track(ctx, client.NewTracking(api), rest)
	default:
		fmt.Fprint(c.stderr, usage)
		return 2
	}
	if n, ok := notices.Last(); ok && n.Kind == client.NoticeError {
		fmt.Fprintln(c.stderr, n.Message)
	}
	if err != nil {
		return 1
	}
	return 0
}

func (c *cli) report(err error) int {
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}
	return 0
}

func parseID(args []string, want int) (int64, error) {
	if len(args) != want {
		return 0, fmt.Errorf("expected %d argument(s), got %d", want, len(args))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order id %q", args[0])
	}
	return id, nil
}

func (c *cli) list(ctx context.Context, admin *client.AdminSurface, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	search := fs.String("search", "", "Filter by order number, customer name or email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := admin.Refresh(ctx); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tCUSTOMER\tSTATUS\tTOTAL\tCREATED")
	for _, o := range admin.Search(*search) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.OrderNumber, o.Customer.Name, o.Status, o.TotalAmount.StringFixed(2), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	c.printStats(admin.Stats())
	return nil
}

func (c *cli) stats(ctx context.Context, admin *client.AdminSurface) error {
	if err := admin.Refresh(ctx); err != nil {
		return err
	}
	c.printStats(admin.Stats())
	return nil
}

func (c *cli) printStats(s model.Stats) {
	fmt.Fprintf(c.stdout, "pending: %d  in progress: %d  completed: %d  total: %d\n", s.Pending, s.InProgress, s.Completed, s.Total)
}

func (c *cli) show(ctx context.Context, admin *client.AdminSurface, args []string) error {
	id, err := parseID(args, 1)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return err
	}
	order, err := admin.View(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Order %s (#%d) %s, version %d\n", order.OrderNumber, order.ID, order.Status, order.Version)
	fmt.Fprintf(c.stdout, "Customer: %s <%s> %s\n", order.CustomerInfo.Name, order.CustomerInfo.Email, order.CustomerInfo.Phone)
	fmt.Fprintf(c.stdout, "Delivery: %s\n", order.DeliveryType)
	if order.DeliveryAddress != nil {
		fmt.Fprintf(c.stdout, "Address: %s\n", *order.DeliveryAddress)
	}
	if len(order.AllowedStatuses) > 0 {
		fmt.Fprintf(c.stdout, "Next: %s\n", strings.Join(order.AllowedStatuses, ", "))
	}
	if order.Notes != nil {
		fmt.Fprintf(c.stdout, "Notes: %s\n", *order.Notes)
	}
	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY\tPRICE\tTOTAL\tIMAGE")
	for _, item := range order.Items {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", item.Title, item.Quantity, item.Price.StringFixed(2), item.Total.StringFixed(2), item.Image)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Total: %s\n", order.TotalAmount.StringFixed(2))
	return nil
}

func (c *cli) setStatus(ctx context.Context, admin *client.AdminSurface, args []string) error {
	fs := flag.NewFlagSet("set-status", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	notes := fs.String("notes", "", "Notes to store with the change")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(fs.Args(), 2)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return err
	}
	status := model.OrderStatus(fs.Arg(1))

	var notesPtr *string
	if *notes != "" {
		notesPtr = notes
	}
	if err := c.refreshOne(ctx, admin, id); err != nil {
		return err
	}
	order, err := admin.UpdateStatus(ctx, id, &status, notesPtr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Order %s is now %s\n", order.OrderNumber, order.Status)
	return nil
}

func (c *cli) note(ctx context.Context, admin *client.AdminSurface, args []string) error {
	if len(args) < 2 {
		err := errors.New("expected order id and note text")
		fmt.Fprintln(c.stderr, err)
		return err
	}
	id, err := parseID(args[:1], 1)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return err
	}
	text := strings.Join(args[1:], " ")
	if err := c.refreshOne(ctx, admin, id); err != nil {
		return err
	}
	order, err := admin.UpdateStatus(ctx, id, nil, &text)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Notes for order %s updated\n", order.OrderNumber)
	return nil
}

// refreshOne loads the current version of id so updates are conditional on it.
func (c *cli) refreshOne(ctx context.Context, admin *client.AdminSurface, id int64) error {
	_, err := admin.View(ctx, id)
	return err
}

func (c *cli) delete(ctx context.Context, admin *client.AdminSurface, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	yes := fs.Bool("yes", false, "Skip the interactive confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(fs.Args(), 1)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return err
	}

	confirmation, err := admin.RequestDelete(ctx, id)
	if err != nil {
		return err
	}
	if !*yes {
		fmt.Fprintf(c.stdout, "Delete order %d permanently? This cannot be undone. [y/N] ", id)
		answer, _ := bufio.NewReader(c.stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(c.stdout, "Aborted")
			return nil
		}
	}
	if err := admin.ConfirmDelete(ctx, id, confirmation.Token); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Order %d deleted\n", id)
	return nil
}

func (c *cli) track(ctx context.Context, tracking *client.Tracking, args []string) error {
	view, err := tracking.Lookup(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(c.stderr, trackingMessage(err))
		return err
	}

	fmt.Fprintf(c.stdout, "Order %s: %s (%s)\n", view.OrderNumber, view.Badge.Label, view.Badge.Color)
	fmt.Fprintf(c.stdout, "Payment: %s\n", view.PaymentLabel)
	fmt.Fprintf(c.stdout, "Delivery: %s\n", view.DeliveryType)
	if view.DeliveryAddress != nil {
		fmt.Fprintf(c.stdout, "Address: %s\n", *view.DeliveryAddress)
	}
	for _, item := range view.Items {
		fmt.Fprintf(c.stdout, "  %d x %s  %s\n", item.Quantity, item.Title, item.Total.StringFixed(2))
	}
	fmt.Fprintf(c.stdout, "Grand total: %s\n", view.GrandTotal.StringFixed(2))
	return nil
}

func trackingMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrNetwork):
		return client.GenericFailure
	default:
		return "Please enter an order number"
	}
}

func (c *cli) hashKey(args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one key")
	}
	hash, err := pkgAuth.HashKey(args[0], 0)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, hash)
	return nil
}
