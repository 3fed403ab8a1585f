package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/pricing"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ConfirmSelectionRequest is a customer's cart for a request.
//
// ItemIDs nil means "keep the suggested items"; a non-nil empty slice means
// the customer deselected everything. AddonIDs and BundleIDs default to
// empty. TargetStatus defaults to viewed.
type ConfirmSelectionRequest struct {
	Slug         string
	ItemIDs      *[]uuid.UUID
	AddonIDs     []uuid.UUID
	BundleIDs    []uuid.UUID
	TargetStatus string
}

// ConfirmSelectionResult is the stored request after the selection was applied.
type ConfirmSelectionResult struct {
	Request        database.Request
	PreviousStatus database.RequestStatus
	Totals         pricing.Totals
	Cart           pricing.Cart
}

// ConfirmSelection recomputes the total for the customer's selection, stores
// it on the request and advances the status. Confirming replaces the
// confirmed snapshot. The request row stays locked for the whole
// transaction, so concurrent confirmations for one request run one after
// the other and the last one wins.
func (s *RequestService) ConfirmSelection(ctx context.Context, req ConfirmSelectionRequest) (*ConfirmSelectionResult, error) {
	target := database.RequestStatusViewed
	if req.TargetStatus != "" {
		target = database.RequestStatus(req.TargetStatus)
		if target != database.RequestStatusViewed && target != database.RequestStatusConfirmed {
			return nil, ErrInvalidTargetStatus
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	current, err := store.GetRequestBySlugForUpdate(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	if current.Status == database.RequestStatusCancelled {
		return nil, ErrRequestCancelled
	}
	if err := validateStatusTransition(current.Status, target, ActorCustomer); err != nil {
		return nil, err
	}

	items, err := store.ListRequestItems(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("list request items: %w", err)
	}
	var addons []database.Addon
	if len(req.AddonIDs) > 0 {
		addons, err = store.ListAddonsByIDs(ctx, req.AddonIDs)
		if err != nil {
			return nil, fmt.Errorf("list addons: %w", err)
		}
	}
	var bundles []database.ServiceBundle
	if len(req.BundleIDs) > 0 {
		bundles, err = store.ListServiceBundlesByIDs(ctx, req.BundleIDs)
		if err != nil {
			return nil, fmt.Errorf("list bundles: %w", err)
		}
	}

	// Authoritative price, never the display cache.
	settings, err := LoadLaCarte(ctx, store)
	if err != nil {
		return nil, err
	}

	sel := pricing.Selection{AddonIDs: req.AddonIDs, BundleIDs: req.BundleIDs}
	if req.ItemIDs != nil {
		sel.ItemIDs = *req.ItemIDs
	} else {
		sel.ItemIDs = suggestedItemIDs(items)
	}

	cart := pricing.Resolve(itemLines(items), sel, addonLines(addons), bundleLines(bundles))
	totals := cart.Totals(settings.CurrentPricePaise)

	updated, err := store.UpdateRequestSelection(ctx, database.UpdateRequestSelectionParams{
		ID:            current.ID,
		Status:        target,
		SubtotalPaise: totals.Subtotal,
		AddonsPaise:   totals.Addons,
		BundlesPaise:  totals.Bundles,
		LacartePaise:  totals.Package,
		TaxPaise:      totals.Tax,
		TotalPaise:    totals.Total,
	})
	if err != nil {
		return nil, fmt.Errorf("update request selection: %w", err)
	}

	if target == database.RequestStatusConfirmed {
		if err := replaceSnapshot(ctx, store, current.ID, cart, items, addons, bundles); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &ConfirmSelectionResult{
		Request:        updated,
		PreviousStatus: current.Status,
		Totals:         totals,
		Cart:           cart,
	}, nil
}

func replaceSnapshot(
	ctx context.Context,
	store RequestStore,
	requestID uuid.UUID,
	cart pricing.Cart,
	items []database.RequestItem,
	addons []database.Addon,
	bundles []database.ServiceBundle,
) error {
	if err := store.DeleteConfirmedServices(ctx, requestID); err != nil {
		return fmt.Errorf("clear confirmed services: %w", err)
	}
	if err := store.DeleteConfirmedAddons(ctx, requestID); err != nil {
		return fmt.Errorf("clear confirmed addons: %w", err)
	}
	if err := store.DeleteConfirmedBundles(ctx, requestID); err != nil {
		return fmt.Errorf("clear confirmed bundles: %w", err)
	}

	itemByID := make(map[uuid.UUID]database.RequestItem, len(items))
	for _, it := range items {
		itemByID[it.ID] = it
	}
	for _, l := range cart.Items {
		it := itemByID[l.ID]
		if err := store.CreateConfirmedService(ctx, database.CreateConfirmedServiceParams{
			RequestID:     requestID,
			ServiceItemID: it.ID,
			Section:       it.Section,
			Label:         it.Label,
			PricePaise:    it.PricePaise,
		}); err != nil {
			return fmt.Errorf("create confirmed service: %w", err)
		}
	}

	addonByID := make(map[uuid.UUID]database.Addon, len(addons))
	for _, a := range addons {
		addonByID[a.ID] = a
	}
	for _, l := range cart.Addons {
		a := addonByID[l.ID]
		if err := store.CreateConfirmedAddon(ctx, database.CreateConfirmedAddonParams{
			RequestID:   requestID,
			AddonID:     a.ID,
			Name:        a.Name,
			Description: a.Description,
			PricePaise:  a.PricePaise,
		}); err != nil {
			return fmt.Errorf("create confirmed addon: %w", err)
		}
	}

	if cart.Bundle != nil {
		for _, b := range bundles {
			if b.ID != cart.Bundle.ID {
				continue
			}
			if err := store.CreateConfirmedBundle(ctx, database.CreateConfirmedBundleParams{
				RequestID:    requestID,
				BundleID:     b.ID,
				Name:         b.Name,
				PricePaise:   b.PricePaise,
				BulletPoints: b.BulletPoints,
			}); err != nil {
				return fmt.Errorf("create confirmed bundle: %w", err)
			}
			break
		}
	}
	return nil
}

func suggestedItemIDs(items []database.RequestItem) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.IsSuggested {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func itemLines(items []database.RequestItem) []pricing.Line {
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, pricing.Line{ID: it.ID, PricePaise: it.PricePaise, Active: true})
	}
	return lines
}

func addonLines(addons []database.Addon) []pricing.Line {
	lines := make([]pricing.Line, 0, len(addons))
	for _, a := range addons {
		lines = append(lines, pricing.Line{ID: a.ID, PricePaise: a.PricePaise, Active: a.IsActive})
	}
	return lines
}

func bundleLines(bundles []database.ServiceBundle) []pricing.Line {
	lines := make([]pricing.Line, 0, len(bundles))
	for _, b := range bundles {
		lines = append(lines, pricing.Line{ID: b.ID, PricePaise: b.PricePaise, Active: b.IsActive})
	}
	return lines
}
