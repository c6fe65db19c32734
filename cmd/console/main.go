// Command console is the operator view of the moderation queue: it logs in
// as an administrator and prints the activity feed, listings and the
// result of status changes.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/kind"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"github.com/linskybing/bootcamp-go/pkg/client"
)

const usage = `usage: console <command> [args]

commands:
  feed                         recent activity
  stats                        counts per kind and status
  list <kind> [-status s] [-q text]
  show <kind> <id>             contact messages are marked read
  status <kind> <id> <status> [-notes text]
  delete <kind> <id>
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	conf := loadSettings()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(conf.GetString("api_url"), nil,
		client.WithHTTPClient(&http.Client{Timeout: conf.GetDuration("timeout")}))
	c.Session().OnTransition(func(from, to client.State) {
		if to == client.Expired {
			log.Println("session expired, log in again")
		}
	})

	if _, err := c.Login(ctx, conf.GetString("username"), conf.GetString("password")); err != nil {
		log.Fatalf("login: %v", err)
	}
	defer c.Logout(context.Background())

	if err := run(ctx, os.Stdout, c, os.Args[1], os.Args[2:], conf.GetInt("limit")); err != nil {
		c.Logout(context.Background())
		log.Fatal(err)
	}
}

func run(ctx context.Context, out io.Writer, c *client.Client, cmd string, args []string, limit int) error {
	switch cmd {
	case "feed":
		items, err := c.Activities(ctx, limit)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\n", it.Ago, it.Title, it.Description)
		}
		return w.Flush()
	case "stats":
		stats, err := c.Stats(ctx)
		if err != nil {
			return err
		}
		for _, spec := range kind.All() {
			s := stats[spec.Kind]
			fmt.Fprintf(out, "%-12s %4d", spec.Label, s.Total)
			for _, st := range spec.Statuses.States {
				fmt.Fprintf(out, "  %s=%d", st, s.ByStatus[st])
			}
			fmt.Fprintln(out)
		}
		return nil
	case "list":
		return list(ctx, out, c, args)
	case "show":
		return show(ctx, out, c, args)
	case "status":
		return updateStatus(ctx, out, c, args)
	case "delete":
		if len(args) != 2 {
			return errors.New(usage)
		}
		k, err := parseKind(args[0])
		if err != nil {
			return err
		}
		if err := deleteOne(ctx, c, k, args[1]); err != nil {
			return err
		}
		fmt.Fprintln(out, "deleted")
		return nil
	}
	return errors.New(usage)
}

func parseKind(s string) (submission.Kind, error) {
	s = strings.TrimSuffix(strings.ToLower(s), "s")
	k := submission.Kind(s)
	if _, err := kind.Lookup(k); err != nil {
		return "", err
	}
	return k, nil
}

func list(ctx context.Context, out io.Writer, c *client.Client, args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}
	k, err := parseKind(args[0])
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	status := fs.String("status", "", "status filter")
	search := fs.String("q", "", "search text")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	f := client.Filter{Status: submission.Status(*status), Search: *search}

	var rows []submission.Entity
	switch k {
	case submission.KindApplication:
		rows, err = entities(client.List[application.Application](ctx, c, f))
	case submission.KindQuote:
		rows, err = entities(client.List[quote.Quote](ctx, c, f))
	case submission.KindContact:
		rows, err = entities(client.List[contact.Contact](ctx, c, f))
	case submission.KindTestimonial:
		rows, err = entities(client.List[testimonial.Testimonial](ctx, c, f))
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.GetID(), e.CurrentStatus(), e.Created().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func entities[T submission.Entity](items []T, err error) ([]submission.Entity, error) {
	if err != nil {
		return nil, err
	}
	out := make([]submission.Entity, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	return out, nil
}

func show(ctx context.Context, out io.Writer, c *client.Client, args []string) error {
	if len(args) != 2 {
		return errors.New(usage)
	}
	k, err := parseKind(args[0])
	if err != nil {
		return err
	}
	var v any
	switch k {
	case submission.KindApplication:
		v, err = client.Get[application.Application](ctx, c, args[1])
	case submission.KindQuote:
		v, err = client.Get[quote.Quote](ctx, c, args[1])
	case submission.KindContact:
		v, err = client.OpenContact(ctx, c, args[1])
	case submission.KindTestimonial:
		v, err = client.Get[testimonial.Testimonial](ctx, c, args[1])
	}
	if err != nil {
		return err
	}
	return printFields(out, k, v)
}

// printFields prints the detail fields of the kind in registry order.
func printFields(out io.Writer, k submission.Kind, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%v\n", m["id"])
	for _, field := range kind.MustLookup(k).Fields {
		if val, ok := m[field]; ok && val != nil {
			fmt.Fprintf(w, "%s\t%v\n", field, val)
		}
	}
	fmt.Fprintf(w, "created_at\t%v\n", m["created_at"])
	return w.Flush()
}

func updateStatus(ctx context.Context, out io.Writer, c *client.Client, args []string) error {
	if len(args) < 3 {
		return errors.New(usage)
	}
	k, err := parseKind(args[0])
	if err != nil {
		return err
	}
	id, status := args[1], submission.Status(args[2])
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	notes := fs.String("notes", "", "admin notes (quotes only)")
	if err := fs.Parse(args[3:]); err != nil {
		return err
	}
	var notesPtr *string
	if *notes != "" {
		notesPtr = notes
	}

	var e submission.Entity
	switch k {
	case submission.KindApplication:
		e, err = client.UpdateStatus[application.Application](ctx, c, id, status, notesPtr)
	case submission.KindQuote:
		e, err = client.UpdateStatus[quote.Quote](ctx, c, id, status, notesPtr)
	case submission.KindContact:
		e, err = client.UpdateStatus[contact.Contact](ctx, c, id, status, notesPtr)
	case submission.KindTestimonial:
		e, err = client.UpdateStatus[testimonial.Testimonial](ctx, c, id, status, notesPtr)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s -> %s\n", k, e.GetID(), e.CurrentStatus())
	return nil
}

func deleteOne(ctx context.Context, c *client.Client, k submission.Kind, id string) error {
	switch k {
	case submission.KindApplication:
		return client.Delete[application.Application](ctx, c, id)
	case submission.KindQuote:
		return client.Delete[quote.Quote](ctx, c, id)
	case submission.KindContact:
		return client.Delete[contact.Contact](ctx, c, id)
	default:
		return client.Delete[testimonial.Testimonial](ctx, c, id)
	}
}
