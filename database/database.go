package database

import (
	"gorm.io/gorm"
)

type Database struct {
	designRepo        *DesignRepo
	statusHistoryRepo *StatusHistoryRepo
	teamRepo          *TeamRepo
	profileRepo       *ProfileRepo
	achievementRepo   *AchievementRepo
	skillRepo         *SkillRepo
	contactRepo       *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		designRepo:        NewDesignRepo(db),
		statusHistoryRepo: NewStatusHistoryRepo(db),
		teamRepo:          NewTeamRepo(db),
		profileRepo:       NewProfileRepo(db),
		achievementRepo:   NewAchievementRepo(db),
		skillRepo:         NewSkillRepo(db),
		contactRepo:       NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) DesignRepo() *DesignRepo {
	return d.designRepo
}

func (d Database) StatusHistoryRepo() *StatusHistoryRepo {
	return d.statusHistoryRepo
}

func (d Database) TeamRepo() *TeamRepo {
	return d.teamRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) AchievementRepo() *AchievementRepo {
	return d.achievementRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}
