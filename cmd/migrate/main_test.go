//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"talentbridge/internal/pkg/errs"

	"ariga.io/atlas/sql/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyDir(t *testing.T) {
	t.Run("リポジトリのatlas.sumはマイグレーションと一致する", func(t *testing.T) {
		assert.NoError(t, verifyDir("file://../../migrations"))
	})

	t.Run("atlas.sum がなければ失敗", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "001_init.sql"), []byte("CREATE TABLE t (id int);\n"), 0o644))

		err := verifyDir("file://" + dir)

		require.Error(t, err)
		assert.True(t, errs.Is(err, migrate.ErrChecksumNotFound))
		assert.Contains(t, err.Error(), "atlas migrate hash")
	})

	t.Run("ハッシュ後にファイルを編集すると失敗", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "001_init.sql")
		require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE t (id int);\n"), 0o644))
		local, err := migrate.NewLocalDir(dir)
		require.NoError(t, err)
		sum, err := local.Checksum()
		require.NoError(t, err)
		require.NoError(t, migrate.WriteSumFile(local, sum))
		require.NoError(t, verifyDir("file://"+dir))

		require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE t (id bigint);\n"), 0o644))

		err = verifyDir("file://" + dir)
		require.Error(t, err)
		assert.True(t, errs.Is(err, migrate.ErrChecksumMismatch))
	})

	t.Run("file以外のURLは検証しない", func(t *testing.T) {
		assert.NoError(t, verifyDir("atlas://talentbridge"))
	})

	t.Run("存在しないディレクトリは失敗", func(t *testing.T) {
		assert.Error(t, verifyDir("file://"+filepath.Join(t.TempDir(), "missing")))
	})
}
