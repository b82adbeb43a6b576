package cache

import (
	"context"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateScholarshipCache drops every cached read a scholarship write can
// affect: the document itself, all listing pages, the full list and counts.
func InvalidateScholarshipCache(ctx context.Context, cm *CacheManager, scholarshipID string) {
	if scholarshipID != "" {
		SafeDelete(ctx, cm.Scholarship, "id:"+scholarshipID)
	}
	SafeInvalidatePattern(ctx, cm.Scholarship, "list:*")
	SafeDelete(ctx, cm.Scholarship, "all")
	SafeInvalidatePattern(ctx, cm.Stats, "count:*")
}
