package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/domain/types"
)

func TestParseRepository(t *testing.T) {
	t.Run("valid identifier", func(t *testing.T) {
		repo, err := model.ParseRepository("thekingsmakers/IntuneUsefullScript", "")
		gt.NoError(t, err)
		gt.Value(t, repo.Owner).Equal("thekingsmakers")
		gt.Value(t, repo.Name).Equal("IntuneUsefullScript")
		gt.Value(t, repo.Branch).Equal(model.DefaultBranch)
		gt.Value(t, repo.FullName()).Equal("thekingsmakers/IntuneUsefullScript")
	})

	t.Run("explicit branch", func(t *testing.T) {
		repo, err := model.ParseRepository("octo/scripts", "develop")
		gt.NoError(t, err)
		gt.Value(t, repo.Branch).Equal("develop")
	})

	for _, id := range []string{"", "octo", "/scripts", "octo/", "octo/scripts/extra"} {
		t.Run("invalid: "+id, func(t *testing.T) {
			_, err := model.ParseRepository(id, "main")
			gt.Error(t, err)
			gt.Bool(t, goerr.HasTag(err, types.ErrTagConfig)).True()
		})
	}
}

func TestScriptName(t *testing.T) {
	tests := map[string]string{
		"Deploy-App.ps1":             "Deploy-App",
		"scripts/remove-profile.ps1": "remove-profile",
		"a/b/backup.config.ps1":      "backup.config",
		"noext":                      "noext",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			gt.Value(t, model.ScriptName(input)).Equal(want)
		})
	}
}
