package models

import (
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

type Config struct {
	Authority            string `json:"authority"`
	DisputeWindowSeconds string `json:"dispute_window_seconds"`
}

func (c *Config) Build(cfg *crowdfund.SystemConfig) {
	c.Authority = cfg.Authority.String()
	c.DisputeWindowSeconds = util.FromInt64(cfg.DisputeWindowSeconds)
}

type Account struct {
	Id      string `json:"id"`
	Balance string `json:"balance"`
}

func (a *Account) Build(account crowdfund.Identifier, balance uint64) {
	a.Id = account.String()
	a.Balance = util.FromUint64(balance)
}

type NodeVersionInfo struct {
	Semver string `json:"semver"`
	Commit string `json:"commit"`
}

func (n *NodeVersionInfo) Build(semver string, commit string) {
	n.Semver = semver
	n.Commit = commit
}
