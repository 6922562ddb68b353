package service

import (
	"github.com/averyhale/socialnet/internal/config"
	"github.com/averyhale/socialnet/internal/repository"
	"github.com/averyhale/socialnet/internal/token"
)

type Services struct {
	Account *AccountService
	Graph   *GraphService
	Token   *token.Service
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Account: NewAccountService(repos.Account, repos.Follow),
		Graph:   NewGraphService(repos.Account, repos.Follow),
		Token:   token.NewService(cfg.TokenSecret, cfg.TokenTTL),
	}
}
