// Package bill renders a confirmed estimate into a standalone HTML document.
// Build is pure: all data is resolved by the caller and the output only
// depends on its input.
package bill

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"time"

	"github.com/cyclebees/estimates-api/internal/enum"
	"github.com/cyclebees/estimates-api/internal/pricing"
)

const ContentType = "text/html; charset=utf-8"

// IST is the zone every timestamp on a bill is printed in.
var IST = time.FixedZone("IST", 5*60*60+30*60)

var ErrMissingOrderCode = errors.New("bill: order code is required")

// Item is a selected repair or replacement line.
type Item struct {
	Section    string
	Label      string
	PricePaise int64
}

type Addon struct {
	Name        string
	Description string
	PricePaise  int64
}

type Bundle struct {
	Name         string
	PricePaise   int64
	BulletPoints []string
}

// Totals are the stored amounts of the request; Build never recomputes them.
type Totals struct {
	SubtotalPaise int64
	AddonsPaise   int64
	BundlesPaise  int64
	LaCartePaise  int64
	TaxPaise      int64
	TotalPaise    int64
}

// Data is everything printed on a bill.
type Data struct {
	OrderCode    string
	CustomerName string
	BikeName     string
	Status       string
	CreatedAt    time.Time
	SentAt       *time.Time
	ConfirmedAt  *time.Time
	Items        []Item
	Addons       []Addon
	Bundles      []Bundle
	Totals       Totals
	AdminCopy    bool
	GeneratedAt  time.Time
}

// Document is a rendered bill ready to be served as a download.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

type view struct {
	Data
	RepairItems      []Item
	ReplacementItems []Item
	Confirmed        bool
	DateLabel        string
	DateValue        string
}

// Build renders d. Identical input yields byte-identical output.
func Build(d Data) (Document, error) {
	if d.OrderCode == "" {
		return Document{}, ErrMissingOrderCode
	}

	v := view{Data: d, Confirmed: d.Status == enum.RequestStatusConfirmed}
	for _, it := range d.Items {
		switch it.Section {
		case enum.ItemSectionRepair:
			v.RepairItems = append(v.RepairItems, it)
		case enum.ItemSectionReplacement:
			v.ReplacementItems = append(v.ReplacementItems, it)
		}
	}

	switch {
	case d.ConfirmedAt != nil:
		v.DateLabel, v.DateValue = "Confirmed Date", formatDate(*d.ConfirmedAt)
	case d.SentAt != nil:
		v.DateLabel, v.DateValue = "Sent Date", formatDate(*d.SentAt)
	default:
		v.DateLabel, v.DateValue = "Sent Date", "Not sent"
	}

	var buf bytes.Buffer
	if err := billTemplate.Execute(&buf, v); err != nil {
		return Document{}, fmt.Errorf("render bill: %w", err)
	}

	return Document{
		Filename:    Filename(d.OrderCode, d.AdminCopy),
		ContentType: ContentType,
		Body:        buf.Bytes(),
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Filename is Order_<code>.html, or Admin_Order_<code>.html for the staff copy.
func Filename(orderCode string, adminCopy bool) string {
	name := "Order_" + unsafeFilenameChars.ReplaceAllString(orderCode, "_") + ".html"
	if adminCopy {
		return "Admin_" + name
	}
	return name
}

func formatDate(t time.Time) string {
	return t.In(IST).Format("02 Jan 2006, 03:04 PM")
}

var billTemplate = template.Must(template.New("bill").Funcs(template.FuncMap{
	"inr":  pricing.FormatINR,
	"date": formatDate,
}).Parse(billHTML))
