package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Alamin4D/battle-server-website/internal/models"
)

func TestExportService_ExportApplications(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	res, err := repo.Application().Insert(ctx, models.Document{
		"scholarshipName": "Scholarship A",
		"userData":        map[string]interface{}{"email": "a@b.com"},
	})
	require.NoError(t, err)
	_, err = repo.Application().Insert(ctx, models.Document{"degree": "Masters"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(repo, testLogger()).ExportApplications(ctx, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ApplicationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"_id", "degree", "scholarshipName", "userData"}, rows[0])
	assert.Equal(t, res.InsertedID, rows[1][0])
	assert.Equal(t, "Scholarship A", rows[1][2])
	assert.Equal(t, `{"email":"a@b.com"}`, rows[1][3])
	assert.Equal(t, "Masters", rows[2][1])
}

func TestExportService_EmptyScholarships(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExportService(newMemoryRepo(t), testLogger()).ExportScholarships(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ScholarshipsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"_id"}, rows[0])
}
