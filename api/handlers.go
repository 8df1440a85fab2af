package api

import (
	"github.com/OpenStag/openstage-website/config"
	"github.com/OpenStag/openstage-website/database"
	"github.com/OpenStag/openstage-website/lifecycle"
	"github.com/OpenStag/openstage-website/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, engine *lifecycle.Service, relay services.EmailRelay, c map[string]string) *routeHandlers {
	return &routeHandlers{
		designHandler:      newDesignHandler(engine, db.DesignRepo()),
		developmentHandler: newDevelopmentHandler(engine, db.DesignRepo()),
		profileHandler:     newProfileHandler(engine, db.ProfileRepo(), db.SkillRepo(), db.AchievementRepo()),
		contactHandler:     newContactHandler(relay, db.ContactRepo(), config.GetString(c, "CONTACT_RECIPIENT", "")),
		authHandler: newAuthHandler(
			config.GetString(c, "SIGNED_IN_REDIRECT", "/profile"),
			config.GetString(c, "SIGNED_OUT_REDIRECT", "/login"),
		),
	}
}
