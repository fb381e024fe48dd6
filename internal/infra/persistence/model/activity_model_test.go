package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestActivityEventModel_AcknowledgmentUpsertIndex(t *testing.T) {
	parsed, err := schema.Parse(&ActivityEventModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var ackIndex *schema.Index
	for _, idx := range parsed.ParseIndexes() {
		if idx.Name == "uniq_case_wallet_acknowledgment" {
			ackIndex = idx

			break
		}
	}

	// The acknowledgment ON CONFLICT upsert targets this index.
	require.NotNil(t, ackIndex)
	assert.Equal(t, "UNIQUE", ackIndex.Class)
	assert.Equal(t, "event_type = 'acknowledgment'", ackIndex.Where)

	require.Len(t, ackIndex.Fields, 2)
	assert.Equal(t, "CaseNumber", ackIndex.Fields[0].Name)
	assert.Equal(t, "WalletAddress", ackIndex.Fields[1].Name)
}
