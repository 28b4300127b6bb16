package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Portal.validate(); err != nil {
		return fmt.Errorf("portal: %w", err)
	}

	return nil
}

func (p *PortalConfig) validate() error {
	if p.MinYear <= 0 || p.MaxYear <= 0 {
		return fmt.Errorf("min_year and max_year must be positive")
	}
	if p.MinYear > p.MaxYear {
		return fmt.Errorf("min_year (%d) must not exceed max_year (%d)", p.MinYear, p.MaxYear)
	}
	if p.MaxFilesPerBatch <= 0 {
		return fmt.Errorf("max_files_per_batch must be > 0 (got %d)", p.MaxFilesPerBatch)
	}
	if p.MaxNoteLength <= 0 {
		return fmt.Errorf("max_note_length must be > 0 (got %d)", p.MaxNoteLength)
	}
	return nil
}
