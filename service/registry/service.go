package registry

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/service/escrow"
	"github.com/shopspring/decimal"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService is the write side of the crowdfunding engine, campaigns are addressed by their address
type IService interface {
	CreateCampaign(ctx context.Context, caller model.Address, input CreateInput) (model.Campaign, error)
	Contribute(
		ctx context.Context, campaign model.Address, caller model.Address, amount decimal.Decimal,
	) (escrow.ContributeOutput, error)
	WithdrawCreatorFunds(ctx context.Context, campaign model.Address, caller model.Address, amount decimal.Decimal) error
	GetRefund(ctx context.Context, campaign model.Address, caller model.Address) (decimal.Decimal, error)
	CancelCampaign(ctx context.Context, campaign model.Address, caller model.Address) error
	TransferBadge(
		ctx context.Context, campaign model.Address, caller model.Address,
		from model.Address, to model.Address, tokenID int64,
	) error
	Approve(ctx context.Context, campaign model.Address, caller model.Address, to model.Address, tokenID int64) error
	SetApprovalForAll(
		ctx context.Context, campaign model.Address, caller model.Address, operator model.Address, approved bool,
	) error
}

// Service ...
type Service struct {
	reg *Registry
}

var _ IService = &Service{}

// NewService ...
func NewService(reg *Registry) *Service {
	return &Service{
		reg: reg,
	}
}

// CreateCampaign ...
func (s *Service) CreateCampaign(ctx context.Context, caller model.Address, input CreateInput) (model.Campaign, error) {
	esc, err := s.reg.Create(ctx, caller, input)
	if err != nil {
		return model.Campaign{}, err
	}
	return esc.Snapshot(), nil
}

// Contribute ...
func (s *Service) Contribute(
	ctx context.Context, campaign model.Address, caller model.Address, amount decimal.Decimal,
) (escrow.ContributeOutput, error) {
	esc, err := s.reg.Get(campaign)
	if err != nil {
		return escrow.ContributeOutput{}, err
	}
	return esc.Contribute(ctx, caller, amount)
}

// WithdrawCreatorFunds ...
func (s *Service) WithdrawCreatorFunds(
	ctx context.Context, campaign model.Address, caller model.Address, amount decimal.Decimal,
) error {
	esc, err := s.reg.Get(campaign)
	if err != nil {
		return err
	}
	return esc.WithdrawCreatorFunds(ctx, caller, amount)
}

// GetRefund ...
func (s *Service) GetRefund(ctx context.Context, campaign model.Address, caller model.Address) (decimal.Decimal, error) {
	esc, err := s.reg.Get(campaign)
	if err != nil {
		return decimal.Zero, err
	}
	return esc.GetRefund(ctx, caller)
}

// CancelCampaign ...
func (s *Service) CancelCampaign(ctx context.Context, campaign model.Address, caller model.Address) error {
	esc, err := s.reg.Get(campaign)
	if err != nil {
		return err
	}
	return esc.CancelCampaign(ctx, caller)
}

// TransferBadge ...
func (s *Service) TransferBadge(
	ctx context.Context, campaign model.Address, caller model.Address,
	from model.Address, to model.Address, tokenID int64,
) error {
	esc, err := s.reg.Get(campaign)
	if err != nil {
		return err
	}
	return esc.TransferBadge(ctx, caller, from, to, tokenID)
}

// Approve ...
func (s *Service) Approve(
	ctx context.Context, campaign model.Address, caller model.Address, to model.Address, tokenID int64,
) error {
	esc, err := s.reg.Get(campaign)
	if err != nil {
		return err
	}
	return esc.Approve(ctx, caller, to, tokenID)
}

// SetApprovalForAll ...
func (s *Service) SetApprovalForAll(
	ctx context.Context, campaign model.Address, caller model.Address, operator model.Address, approved bool,
) error {
	esc, err := s.reg.Get(campaign)
	if err != nil {
		return err
	}
	return esc.SetApprovalForAll(ctx, caller, operator, approved)
}
