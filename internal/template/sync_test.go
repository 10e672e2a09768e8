package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSyncStatus_EmptyStatusMap(t *testing.T) {
	assert.Equal(t, SyncStatusPending, ComputeSyncStatus(nil, []string{"t1"}))
	assert.Equal(t, SyncStatusPending, ComputeSyncStatus(map[string][]TranslationStatus{}, []string{"t1"}))
}

func TestComputeSyncStatus_MissingNameIsPending(t *testing.T) {
	statusMap := map[string][]TranslationStatus{
		"t1": {{Status: GalleryStatusApproved}},
	}
	assert.Equal(t, SyncStatusPending, ComputeSyncStatus(statusMap, []string{"t1", "t2"}))
}

func TestComputeSyncStatus_RejectedTranslation(t *testing.T) {
	statusMap := map[string][]TranslationStatus{
		"t1": {{Status: GalleryStatusRejected}},
		"t2": {{Status: GalleryStatusApproved}},
	}
	assert.Equal(t, SyncStatusRejected, ComputeSyncStatus(statusMap, []string{"t1", "t2"}))
}

func TestComputeSyncStatus_RejectedBeatsPendingWithinName(t *testing.T) {
	statusMap := map[string][]TranslationStatus{
		"t1": {{Status: "IN_REVIEW"}, {Status: GalleryStatusRejected}},
	}
	assert.Equal(t, SyncStatusRejected, ComputeSyncStatus(statusMap, []string{"t1"}))
}

func TestComputeSyncStatus_NonApprovedTranslationIsPending(t *testing.T) {
	statusMap := map[string][]TranslationStatus{
		"t1": {{Status: GalleryStatusApproved}, {Status: "IN_REVIEW"}},
	}
	assert.Equal(t, SyncStatusPending, ComputeSyncStatus(statusMap, []string{"t1"}))
}

func TestComputeSyncStatus_AllApproved(t *testing.T) {
	statusMap := map[string][]TranslationStatus{
		"t1": {{Status: GalleryStatusApproved}},
		"t2": {{Status: GalleryStatusApproved}, {Status: GalleryStatusApproved}},
	}
	assert.Equal(t, SyncStatusSynchronized, ComputeSyncStatus(statusMap, []string{"t1", "t2"}))
}

func TestComputeSyncStatus_ShortCircuitsOnFirstFailure(t *testing.T) {
	// t1's rejection decides the result before t2 (which is missing and
	// would otherwise yield pending) is ever looked at.
	statusMap := map[string][]TranslationStatus{
		"t1": {{Status: GalleryStatusRejected}},
	}
	assert.Equal(t, SyncStatusRejected, ComputeSyncStatus(statusMap, []string{"t1", "t2"}))

	// Flipping the order makes the missing name win instead.
	assert.Equal(t, SyncStatusPending, ComputeSyncStatus(statusMap, []string{"t2", "t1"}))
}

func TestComputeSyncStatus_NoRequestedNames(t *testing.T) {
	statusMap := map[string][]TranslationStatus{
		"t1": {{Status: GalleryStatusRejected}},
	}
	assert.Equal(t, SyncStatusSynchronized, ComputeSyncStatus(statusMap, nil))
}
