package entities

// PlayerPatch is a partial update to a player record. Nil pointer and nil
// map fields are left untouched; append fields add to the existing
// sequence. A patch is applied atomically as a single-record write.
type PlayerPatch struct {
	CurrentLocation *string
	CurrentHealth   *int32
	// QuestProgress replaces the stored map wholesale when non-nil
	QuestProgress map[string]QuestProgress
	// InventoryAppend appends items; inventory is append-only from the
	// engine's perspective
	InventoryAppend []string
	// JournalRumorsAppend appends rumors the player just heard
	JournalRumorsAppend []string
	// JournalEntriesAppend appends journal entries
	JournalEntriesAppend []string
}

// IsZero reports whether the patch changes nothing
func (p *PlayerPatch) IsZero() bool {
	return p.CurrentLocation == nil &&
		p.CurrentHealth == nil &&
		p.QuestProgress == nil &&
		len(p.InventoryAppend) == 0 &&
		len(p.JournalRumorsAppend) == 0 &&
		len(p.JournalEntriesAppend) == 0
}

// Merge folds another patch into this one, with other taking precedence
// on scalar fields.
func (p *PlayerPatch) Merge(other PlayerPatch) {
	if other.CurrentLocation != nil {
		p.CurrentLocation = other.CurrentLocation
	}
	if other.CurrentHealth != nil {
		p.CurrentHealth = other.CurrentHealth
	}
	if other.QuestProgress != nil {
		p.QuestProgress = other.QuestProgress
	}
	p.InventoryAppend = append(p.InventoryAppend, other.InventoryAppend...)
	p.JournalRumorsAppend = append(p.JournalRumorsAppend, other.JournalRumorsAppend...)
	p.JournalEntriesAppend = append(p.JournalEntriesAppend, other.JournalEntriesAppend...)
}
