package maintenance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"teams": [{"tid": 0, "srID": "BOS"}],
		"contracts": [{"pid": 4, "tid": 0, "amount": 1200, "exp": 2023}],
		"players": [{"pid": 4, "tid": 0, "ovr": 61, "pos": "G"}],
		"headToHeads": [{"season": 2021, "tid": 0, "oppTid": 1, "won": 2, "lost": 1}]
	}`), 0o600))

	dump, err := readDump(path)
	require.NoError(t, err)
	require.Len(t, dump.Teams, 1)
	assert.Equal(t, "BOS", dump.Teams[0].SrID)
	assert.Equal(t, 3, dump.Len())
	require.Len(t, dump.HeadToHeads, 1)
	assert.Equal(t, 1, dump.HeadToHeads[0].OppTid)
	assert.Equal(t, 2, dump.HeadToHeads[0].Won)
}

func TestReadDumpMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"teams": [`), 0o600))

	_, err := readDump(path)
	assert.Error(t, err)

	_, err = readDump(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
