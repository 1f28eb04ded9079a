package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"talentbridge/cmd/bootstrap"
	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"ariga.io/atlas/sql/migrate"
)

func main() {
	var (
		dir     = flag.String("dir", "file://migrations", "migration directory URL")
		atlas   = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun  = flag.Bool("dry-run", false, "print pending migrations without applying them")
		rehash  = flag.Bool("hash", false, "rewrite atlas.sum before applying")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := migrate(ctx, logger, cfg.DB, *atlas, *dir, *dryRun, *rehash); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

// migrate applies pending files. With rehash the sum file is regenerated first; otherwise a stale sum aborts the run.
func migrate(ctx context.Context, logger *slog.Logger, db config.DBConfig, atlasPath, dir string, dryRun, rehash bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	client, err := atlasexec.NewClient(wd, atlasPath)
	if err != nil {
		return err
	}

	if rehash {
		if err := client.MigrateHash(ctx, &atlasexec.MigrateHashParams{DirURL: dir}); err != nil {
			return errs.Wrap(err, "atlas migrate hash")
		}
		logger.Info("atlas.sum を再生成しました", "dir", dir)
	}
	if err := verifyDir(dir); err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    db.BuildDSN(),
		DirURL: dir,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション適用", "version", f.Version, "name", f.Name, "dry_run", dryRun)
	}
	logger.Info("マイグレーション完了", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}

// verifyDir checks a local migration directory against its atlas.sum. Non-file URLs are left to atlas.
func verifyDir(dirURL string) error {
	path, ok := strings.CutPrefix(dirURL, "file://")
	if !ok {
		return nil
	}
	dir, err := migrate.NewLocalDir(path)
	if err != nil {
		return errs.Wrap(err, "open migration directory")
	}
	if err := migrate.Validate(dir); err != nil {
		return errs.Wrap(err, "atlas.sum is missing or stale for "+path+"; run `atlas migrate hash --dir "+dirURL+"` or pass -hash")
	}
	return nil
}
