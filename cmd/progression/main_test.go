package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

type CLITestSuite struct {
	suite.Suite
	dataDir string
}

func (s *CLITestSuite) SetupTest() {
	s.dataDir = s.T().TempDir()
}

func (s *CLITestSuite) run(args ...string) (string, error) {
	c := newCLI()
	var stdout, stderr bytes.Buffer
	c.root.SetOut(&stdout)
	c.root.SetErr(&stderr)
	c.root.SetArgs(append([]string{
		"--config", filepath.Join(s.dataDir, "missing.toml"),
		"--data-dir", s.dataDir,
		"--backend", config.BackendFile,
	}, args...))

	err := c.execute(context.Background())
	return stdout.String(), err
}

func (s *CLITestSuite) decode(out string) map[string]interface{} {
	var got map[string]interface{}
	s.Require().NoError(json.Unmarshal([]byte(out), &got))
	return got
}

func (s *CLITestSuite) TestCharacterPersistsAcrossInvocations() {
	_, err := s.run("character", "create", testutils.TestUserID, "rogue", "--name", "Shade")
	s.Require().NoError(err)

	_, err = s.run("character", "add-xp", testutils.TestUserID, "400")
	s.Require().NoError(err)

	out, err := s.run("character", "get", testutils.TestUserID)
	s.Require().NoError(err)

	char := s.decode(out)["Character"].(map[string]interface{})
	s.Equal("Shade", char["name"])
	s.Equal("rogue", char["class"])
	s.Equal(float64(3), char["level"])
	s.Equal(float64(400), char["xp"])

	s.FileExists(filepath.Join(s.dataDir, "characters.json"))
}

func (s *CLITestSuite) TestProfileMessage() {
	out, err := s.run("profile", "message", testutils.TestUserID, "42", "--name", "Shade")
	s.Require().NoError(err)
	s.Contains(s.decode(out), "Profile")

	out, err = s.run("profile", "get", testutils.TestUserID)
	s.Require().NoError(err)
	s.Equal(float64(1), s.decode(out)["Rank"])
}

func (s *CLITestSuite) TestServiceErrorsAreReturned() {
	_, err := s.run("character", "get", testutils.TestUserID)
	s.True(errors.IsNotFound(err))

	_, err = s.run("character", "add-xp", testutils.TestUserID, "lots")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestExitCodes() {
	s.Equal(5, exitCode(errors.NotFound("missing")))
	s.Equal(3, exitCode(errors.InvalidArgument("bad")))
	s.Equal(9, exitCode(errors.Busyf("character is %s", "resting")))
	s.Equal(13, exitCode(fmt.Errorf("disk on fire")))
}

func (s *CLITestSuite) TestCatalogItems() {
	out, err := s.run("catalog", "items")
	s.Require().NoError(err)

	var items []map[string]interface{}
	s.Require().NoError(json.Unmarshal([]byte(out), &items))
	s.Len(items, 10)
}

func (s *CLITestSuite) TestTitles() {
	out, err := s.run("titles")
	s.Require().NoError(err)

	var titles []map[string]interface{}
	s.Require().NoError(json.Unmarshal([]byte(out), &titles))
	s.NotEmpty(titles)
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
