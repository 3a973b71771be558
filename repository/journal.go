package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/service/escrow"
	"github.com/QuangTung97/crowdfund/service/registry"
)

// ErrStaleVersion is returned when a record is older than the stored campaign
var ErrStaleVersion = errors.New("stale campaign version")

// Journal persists escrow records in MySQL and loads them back at startup
type Journal struct {
	provider Provider

	campaignRepo    Campaign
	contributorRepo Contributor
	badgeRepo       Badge
	eventRepo       Event
}

var _ escrow.Journal = &Journal{}
var _ registry.Loader = &Journal{}

// NewJournal ...
func NewJournal(
	provider Provider, campaignRepo Campaign, contributorRepo Contributor, badgeRepo Badge, eventRepo Event,
) *Journal {
	return &Journal{
		provider:        provider,
		campaignRepo:    campaignRepo,
		contributorRepo: contributorRepo,
		badgeRepo:       badgeRepo,
		eventRepo:       eventRepo,
	}
}

// Record writes every row of the record in one transaction
func (j *Journal) Record(ctx context.Context, rec escrow.Record) error {
	return j.provider.Transact(ctx, func(ctx context.Context) error {
		version, err := j.campaignRepo.LockCampaign(ctx, rec.Campaign.Address)
		if errors.Is(err, sql.ErrNoRows) {
			version = 0
		} else if err != nil {
			return err
		}

		if version >= rec.Campaign.Version {
			return fmt.Errorf("%w: campaign %s stored %d, record %d",
				ErrStaleVersion, rec.Campaign.Address, version, rec.Campaign.Version)
		}

		if err := j.campaignRepo.UpsertCampaign(ctx, rec.Campaign); err != nil {
			return err
		}
		if err := j.contributorRepo.UpsertContributors(ctx, rec.Contributors); err != nil {
			return err
		}
		if err := j.badgeRepo.UpsertBadges(ctx, rec.Badges); err != nil {
			return err
		}
		if err := j.badgeRepo.UpsertOperators(ctx, rec.Operators); err != nil {
			return err
		}
		return j.eventRepo.InsertEvents(ctx, rec.Events)
	})
}

// LoadAll reads every campaign with its contributors, badges, operators and events
func (j *Journal) LoadAll(ctx context.Context) (registry.Snapshot, error) {
	ctx = j.provider.Readonly(ctx)

	campaigns, err := j.campaignRepo.FindAllCampaigns(ctx)
	if err != nil {
		return registry.Snapshot{}, err
	}
	contributors, err := j.contributorRepo.FindAllContributors(ctx)
	if err != nil {
		return registry.Snapshot{}, err
	}
	badges, err := j.badgeRepo.FindAllBadges(ctx)
	if err != nil {
		return registry.Snapshot{}, err
	}
	operators, err := j.badgeRepo.FindAllOperators(ctx)
	if err != nil {
		return registry.Snapshot{}, err
	}
	events, err := j.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return registry.Snapshot{}, err
	}

	states := make([]escrow.State, 0, len(campaigns))
	index := map[model.Address]int{}
	for i, c := range campaigns {
		index[c.Address] = i
		states = append(states, escrow.State{Campaign: c})
	}

	for _, c := range contributors {
		if i, ok := index[c.CampaignAddress]; ok {
			states[i].Contributors = append(states[i].Contributors, c)
		}
	}
	for _, b := range badges {
		if i, ok := index[b.CampaignAddress]; ok {
			states[i].Badges = append(states[i].Badges, b)
		}
	}
	for _, op := range operators {
		if i, ok := index[op.CampaignAddress]; ok {
			states[i].Operators = append(states[i].Operators, op)
		}
	}

	var registryEvents []model.Event
	for _, e := range events {
		switch e.AggregateType {
		case model.AggregateTypeRegistry:
			registryEvents = append(registryEvents, e)
		case model.AggregateTypeCampaign:
			if i, ok := index[e.AggregateID]; ok {
				states[i].Events = append(states[i].Events, e)
			}
		default:
		}
	}

	return registry.Snapshot{
		Campaigns: states,
		Events:    registryEvents,
	}, nil
}
