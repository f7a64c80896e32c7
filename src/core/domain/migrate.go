package domain

// formConfigMigration upgrades a decoded configuration document in place.
type formConfigMigration struct {
	name  string
	apply func(cfg *FormConfig)
}

// formConfigMigrations run in order on every load. Each step must be
// idempotent because documents carry no schema version.
var formConfigMigrations = []formConfigMigration{
	{
		name: "backfill_level_label",
		apply: func(cfg *FormConfig) {
			if cfg.Labels.Level == "" {
				cfg.Labels.Level = DefaultFormConfig().Labels.Level
			}
		},
	},
	{
		name: "normalize_empty_lists",
		apply: func(cfg *FormConfig) {
			if cfg.Jobs == nil {
				cfg.Jobs = []string{}
			}
			if cfg.Bosses == nil {
				cfg.Bosses = []Encounter{}
			}
		},
	},
}

// MigrateFormConfig brings a stored document up to the current shape and
// returns the names of the steps that were applied.
func MigrateFormConfig(cfg *FormConfig) []string {
	var applied []string
	for _, m := range formConfigMigrations {
		before := snapshotForMigration(cfg)
		m.apply(cfg)
		if snapshotForMigration(cfg) != before {
			applied = append(applied, m.name)
		}
	}
	return applied
}

type migrationSnapshot struct {
	level     string
	nilJobs   bool
	nilBosses bool
}

func snapshotForMigration(cfg *FormConfig) migrationSnapshot {
	return migrationSnapshot{
		level:     cfg.Labels.Level,
		nilJobs:   cfg.Jobs == nil,
		nilBosses: cfg.Bosses == nil,
	}
}
