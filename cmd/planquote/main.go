package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meaeduarda/cronossolutions/internal/catalog"
	"github.com/meaeduarda/cronossolutions/internal/message"
	"github.com/meaeduarda/cronossolutions/internal/pricing"
	"github.com/meaeduarda/cronossolutions/internal/whatsapp"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		exitWithError(err)
	}
}

type quote struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	CustomQuote bool   `json:"custom_quote"`
	pricing.Formatted
	Message string `json:"message"`
	Link    string `json:"link,omitempty"`
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("planquote", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		planFlag    string
		catalogFlag string
		localeFlag  string
		phoneFlag   string
		linkFlag    bool
		jsonFlag    bool
	)
	fs.StringVar(&planFlag, "plan", "", "plan key to quote (see -plan list)")
	fs.StringVar(&catalogFlag, "catalog", strings.TrimSpace(os.Getenv("CATALOG_PATH")), "YAML catalog file (defaults to the built-in catalog)")
	fs.StringVar(&localeFlag, "locale", "pt", "message language (pt, en)")
	fs.StringVar(&phoneFlag, "phone", envOr("WHATSAPP_PHONE", "5581994527528"), "WhatsApp destination number")
	fs.BoolVar(&linkFlag, "link", false, "print the WhatsApp deep link")
	fs.BoolVar(&jsonFlag, "json", false, "print the quote as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat := catalog.Default()
	if catalogFlag != "" {
		var err error
		if cat, err = catalog.LoadFile(catalogFlag); err != nil {
			return err
		}
	}

	key := strings.TrimSpace(strings.ToLower(planFlag))
	if key == "" {
		return errors.New("-plan is required")
	}
	if key == "list" {
		for _, k := range cat.Keys() {
			fmt.Fprintln(out, k)
		}
		return nil
	}

	calc := pricing.NewCalculator(cat)
	derived, err := calc.Derive(key)
	if err != nil {
		return fmt.Errorf("plan %q: %w (known: %s)", key, err, strings.Join(cat.Keys(), ", "))
	}
	format := pricing.DefaultFormatter()
	text := message.NewComposer(cat, format).WithLabels(message.LabelsFor(localeFlag)).ComposeDerived(derived)

	q := quote{
		Key:         derived.Plan.Key,
		Name:        derived.Plan.Name,
		CustomQuote: derived.IsCustomQuote,
		Formatted:   format.Format(derived),
		Message:     text,
	}
	if linkFlag || jsonFlag {
		d, err := whatsapp.NewDispatcher(envOr("WHATSAPP_ENDPOINT", whatsapp.DefaultEndpoint), phoneFlag)
		if err != nil {
			return err
		}
		q.Link = d.URL(text)
	}

	if jsonFlag {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}

	fmt.Fprintf(out, "%s (%s) catalog %s\n", q.Name, q.Key, cat.Version())
	if q.CustomQuote {
		fmt.Fprintln(out, "custom quote")
	} else {
		fmt.Fprintf(out, "original=%s discounted=%s monthly=%s savings=%s\n", q.OriginalPrice, q.DiscountedPrice, q.MonthlyPrice, q.Savings)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, q.Message)
	if linkFlag {
		fmt.Fprintln(out)
		fmt.Fprintln(out, q.Link)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
