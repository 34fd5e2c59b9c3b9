package bootstrap

import (
	"log/slog"

	"github.com/hieuluvjingliu/GardenBredN/internal/breeding"
	"github.com/hieuluvjingliu/GardenBredN/internal/classweights"
	"github.com/hieuluvjingliu/GardenBredN/internal/config"
	"github.com/hieuluvjingliu/GardenBredN/internal/economy"
	"github.com/hieuluvjingliu/GardenBredN/internal/event"
	"github.com/hieuluvjingliu/GardenBredN/internal/farm"
	"github.com/hieuluvjingliu/GardenBredN/internal/gacha"
	"github.com/hieuluvjingliu/GardenBredN/internal/market"
	"github.com/hieuluvjingliu/GardenBredN/internal/mutation"
	"github.com/hieuluvjingliu/GardenBredN/internal/player"
	"github.com/hieuluvjingliu/GardenBredN/internal/server"
	"github.com/hieuluvjingliu/GardenBredN/internal/view"
)

// InitializeServices wires the domain services on top of the repositories.
// The class weight provider is returned alongside so the caller can run its
// file watcher and include it in shutdown. A missing or invalid weights file
// is logged and the provider's built-in default table stays in effect.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) (server.Services, *classweights.Provider) {
	weights, err := classweights.NewProvider(cfg.ClassWeightsPath)
	if err != nil {
		// the provider already holds the default table; startup proceeds
		slog.Warn(LogMsgClassWeightsFallback, "path", cfg.ClassWeightsPath, "error", err)
	}

	roller := mutation.NewRoller()

	playerSvc := player.NewService(repos.Player, repos.Farm)
	farmSvc := farm.NewService(repos.Farm, bus)
	economySvc := economy.NewService(repos.Inventory, repos.Catalog)
	marketSvc := market.NewService(repos.Market, bus)
	breedingSvc := breeding.NewService(repos.Inventory, weights, roller)
	gachaSvc := gacha.NewService(
		repos.Gacha,
		repos.Inventory,
		repos.Catalog,
		weights,
		roller,
		bus,
		cfg.QueueLookahead,
		cfg.QueuePreview,
	)
	viewSvc := view.NewService(repos.Player, repos.Inventory, repos.Market, farmSvc, gachaSvc)

	return server.Services{
		Player:   playerSvc,
		Farm:     farmSvc,
		Economy:  economySvc,
		Market:   marketSvc,
		Breeding: breedingSvc,
		Gacha:    gachaSvc,
		View:     viewSvc,
	}, weights
}
