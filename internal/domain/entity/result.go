package entity

// CleanupResult reports the best-effort steps that followed an authoritative write.
type CleanupResult struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	// OrphansDeleted counts items removed because they lost their last cart.
	OrphansDeleted int `json:"orphans_deleted"`
}

// RecordSuccess counts a completed cleanup step.
func (r *CleanupResult) RecordSuccess() {
	r.Attempted++
	r.Succeeded++
}

// RecordFailure counts a failed cleanup step.
func (r *CleanupResult) RecordFailure() {
	r.Attempted++
	r.Failed++
}

// RemovalResult is returned when an item leaves a single cart.
type RemovalResult struct {
	Item        *Item `json:"item,omitempty"` // Post-image; nil when the item was deleted.
	ItemDeleted bool  `json:"item_deleted"`
}

// NukeResult is returned when an item is removed from every cart and deleted.
type NukeResult struct {
	ItemID        string `json:"item_id"`
	ModifiedCarts int    `json:"modified_carts"`
	FailedCarts   int    `json:"failed_carts"`
}

// CartSnapshot is the read-only view of a cart sent to share recipients.
type CartSnapshot struct {
	Cart  *Cart   `json:"cart"`
	Items []*Item `json:"items"`
}
