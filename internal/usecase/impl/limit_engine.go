package impl

import (
	"uniform/config"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/limit"
)

// NewLimitEngine builds the admission engine from the limits configuration.
func NewLimitEngine(cfg *config.Config) *limit.Engine {
	engineCfg := limit.Config{}
	if cfg == nil || cfg.Limits == nil {
		return limit.NewEngine(engineCfg)
	}

	engineCfg.NewStudentDefault = cfg.Limits.NewStudentDefault
	engineCfg.OldStudentDefault = cfg.Limits.OldStudentDefault
	engineCfg.MonthsPerAcademicYear = cfg.Limits.MonthsPerAcademicYear

	rules := make([]limit.ItemLimitRule, 0, len(cfg.Limits.ItemLimits))
	for _, rule := range cfg.Limits.ItemLimits {
		rules = append(rules, limit.ItemLimitRule{
			Item:           rule.Item,
			EducationLevel: rule.EducationLevel,
			StudentType:    entity.StudentType(rule.StudentType),
			Gender:         entity.Gender(rule.Gender),
			Max:            rule.Max,
		})
	}
	engineCfg.ItemLimits = limit.NewItemLimitTable(rules)

	return limit.NewEngine(engineCfg)
}
