package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testHeader = "Country / Region,Payment system name,Payment system type,Operator," +
	"Bank participation,Non-bank participation,Status of payment system implementation," +
	"National / Regional,Type of settlement system,QR code based transactions," +
	"Cross-border payments,Types of transactions supported," +
	"Active real-time payment system present,URL"

// testDataset is a small CSV exercising grouping, filtering, and aliasing.
const testDataset = testHeader + "\n" +
	"India,UPI,Cross-domain payment system,Other,Yes,Yes,Implemented,National,DNS,Yes,Yes,P2P,Yes,https://example.in\n" +
	"India,IMPS,Interbank payment system,Bank association,Yes,No,Implemented,National,DNS,No,No,P2P,Yes,\n" +
	"Brazil,Pix,Cross-domain payment system,Central bank,Yes,Yes,Implemented,National,RTGS,Yes,No,P2P,Yes,\n" +
	"USA,FedNow,Interbank payment system,Central bank,Yes,No,Implemented,National,RTGS,No,No,P2P,Yes,\n" +
	"Germany,Legacy ACH,Interbank payment system,Central bank,Yes,No,Planned/Piloted,National,ACH,No,No,P2P,No,\n" +
	"Africa,PAPSS,Interbank payment system,Central bank,Yes,No,Implemented,Regional,RTGS,No,Yes,P2P,Yes,\n"

// writeTestDataset writes the standard test CSV into dir and returns its path.
func writeTestDataset(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "dpi-payments.csv")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0o600))
	return path
}

// resetFlags restores every generate flag to its default and clears the
// Changed markers so config-precedence logic behaves as on a fresh process.
func resetFlags(t *testing.T) {
	t.Helper()
	generateCmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

// runPaymap executes the CLI with args and returns captured stdout.
func runPaymap(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	// Summary assertions match plain text, so force colors off.
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}
