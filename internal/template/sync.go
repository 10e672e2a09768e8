package template

// Gallery approval statuses, as returned per translation by the Meta
// template gallery.
const (
	GalleryStatusApproved = "APPROVED"
	GalleryStatusRejected = "REJECTED"
)

// Aggregate rollout statuses for a set of templates.
const (
	SyncStatusSynchronized = "synchronized"
	SyncStatusPending      = "pending"
	SyncStatusRejected     = "rejected"
)

// TranslationStatus is the approval state of one translation of a template
// in the gallery.
type TranslationStatus struct {
	Status string `json:"status"`
}

// ComputeSyncStatus reduces the gallery's per-translation statuses to one
// rollout status for the requested template names.
//
// The requested names are checked in order and the first one that is not
// fully approved decides the result: a name missing from the status map
// yields "pending", any REJECTED translation yields "rejected", any other
// non-APPROVED translation yields "pending". Later names are not inspected
// once a result is decided, so partial gallery data masks their state. An
// empty status map is "pending" outright.
func ComputeSyncStatus(statusMap map[string][]TranslationStatus, requestedNames []string) string {
	if len(statusMap) == 0 {
		return SyncStatusPending
	}

	for _, name := range requestedNames {
		translations, ok := statusMap[name]
		if !ok {
			return SyncStatusPending
		}

		for _, translation := range translations {
			if translation.Status == GalleryStatusRejected {
				return SyncStatusRejected
			}
		}
		for _, translation := range translations {
			if translation.Status != GalleryStatusApproved {
				return SyncStatusPending
			}
		}
	}

	return SyncStatusSynchronized
}
