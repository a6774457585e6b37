package seeds

// SeedAll loads the demo marketplace data: one agent account plus sample
// rental and for-sale inventory. Safe to re-run; existing records are
// skipped by title.
func SeedAll() error {
	agentID, err := SeedAgentUser()
	if err != nil {
		return err
	}
	if err := SeedRentals(agentID); err != nil {
		return err
	}
	if err := SeedBuyProperties(agentID); err != nil {
		return err
	}
	return nil
}
