package inbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextReader_Read(t *testing.T) {
	f, err := os.Open("testdata/inbox.txt")
	require.NoError(t, err)
	defer f.Close()

	msgs, err := TextReader{}.Read(f)
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.True(t, strings.HasPrefix(msgs[0], "HDFC Bank: Rs.1,200.00"))
	assert.Equal(t, "Rs.50,000.00 credited to your A/c XX4321 by NEFT\nfrom ACME CORP on 01-04-2025. -SBI", msgs[1])
	assert.Contains(t, msgs[2], "OTP")
}

func TestTextReader_Empty(t *testing.T) {
	msgs, err := TextReader{}.Read(strings.NewReader("\n\n   \n"))
	require.NoError(t, err)
	assert.Nil(t, msgs)
}

func TestCSVReader_Read(t *testing.T) {
	f, err := os.Open("testdata/backup.csv")
	require.NoError(t, err)
	defer f.Close()

	msgs, err := CSVReader{}.Read(f)
	require.NoError(t, err)
	require.Len(t, msgs, 2, "empty bodies are skipped")
	assert.Contains(t, msgs[0], "swiggy@upi")
	assert.Contains(t, msgs[1], "NETFLIX")
}

func TestCSVReader_HeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"message column", "from,message\nAX-SBI,Rs.10 debited\n", []string{"Rs.10 debited"}},
		{"bom and case", "\uFEFFTEXT\nRs.20 credited\n", []string{"Rs.20 credited"}},
		{"short row", "a,b,body\nx\ny,z,Rs.30 paid\n", []string{"Rs.30 paid"}},
		{"header only", "body\n", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := CSVReader{}.Read(strings.NewReader(tt.csv))
			require.NoError(t, err)
			assert.Equal(t, tt.want, msgs)
		})
	}
}

func TestCSVReader_NoBodyColumn(t *testing.T) {
	_, err := CSVReader{}.Read(strings.NewReader("address,date\nAX,1\n"))
	assert.ErrorContains(t, err, "no message column")
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("txt"))
	assert.NotNil(t, r.Get("CSV"))
	assert.Nil(t, r.Get("pdf"))

	assert.Panics(t, func() { r.Register(&TextReader{}) })
}

func TestScanAndMarkProcessed(t *testing.T) {
	root := t.TempDir()
	files, err := DefaultRegistry().Scan(root)
	require.NoError(t, err)
	assert.Nil(t, files, "missing import dir is not an error")

	require.NoError(t, os.MkdirAll(Dir(root), 0o755))
	data, err := os.ReadFile("testdata/inbox.txt")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(Dir(root), "june.txt"), data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(Dir(root), "notes.md"), []byte("# hi"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(Dir(root), "processed"), 0o755))

	reg := DefaultRegistry()
	files, err = reg.Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "june.txt", files[0].Name)
	assert.Equal(t, "txt", files[0].Format)
	assert.Equal(t, int64(len(data)), files[0].Size)

	msgs, err := reg.ReadFile(files[0])
	require.NoError(t, err)
	assert.Len(t, msgs, 3)

	require.NoError(t, MarkProcessed(root, "june.txt"))
	_, err = os.Stat(filepath.Join(root, "import", "processed", "june.txt"))
	require.NoError(t, err)

	files, err = reg.Scan(root)
	require.NoError(t, err)
	assert.Empty(t, files)
}
