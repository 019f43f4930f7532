package config

import (
	"flag"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_InvalidFileExtension(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test*.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())

	os.Args = []string{"cmd", "--config=" + tmpFile.Name()}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	err = LoadEnv()
	require.ErrorIs(t, err, ErrFileFormat)
}

func TestLoadEnv_FileNotExists(t *testing.T) {
	os.Args = []string{"cmd", "--config=non_existent.env"}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	err := LoadEnv()
	assert.True(t, os.IsNotExist(err))
}

func TestLoadEnv_InvalidLineFormat(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test*.env")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString("INVALID LINE WITHOUT SEPARATOR"); err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()

	os.Args = []string{"cmd", "--config=" + tmpFile.Name()}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	err = LoadEnv()
	assert.Error(t, err)
}

func TestLoadEnv_Success(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test*.env")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())

	content := "# Comment\nKEY=value\nANOTHER=123\n"
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()

	os.Args = []string{"cmd", "--config=" + tmpFile.Name()}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	os.Unsetenv("KEY")
	os.Unsetenv("ANOTHER")
	defer func() {
		os.Unsetenv("KEY")
		os.Unsetenv("ANOTHER")
	}()

	err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "value", os.Getenv("KEY"))
	assert.Equal(t, "123", os.Getenv("ANOTHER"))
}

func TestLoadEnv_DoesNotOverrideExisting(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test*.env")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString("PRESET_KEY=from_file\n")
	require.NoError(t, err)
	tmpFile.Close()

	t.Setenv("PRESET_KEY", "from_process")
	os.Args = []string{"cmd", "--config=" + tmpFile.Name()}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	require.NoError(t, LoadEnv())
	assert.Equal(t, "from_process", os.Getenv("PRESET_KEY"))
}

func TestLoadEnv_ConfigPathPriority(t *testing.T) {
	t.Setenv("CONFIG_PATH", "env_path.env")
	os.Args = []string{"cmd", "--config=flag_path.env"}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	filePath := fetchConfigPath()
	assert.Equal(t, "flag_path.env", filePath)
}

func TestLoadEnv_EmptyPath(t *testing.T) {
	os.Args = []string{"cmd"}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	t.Setenv("CONFIG_PATH", "")

	err := LoadEnv()
	require.ErrorIs(t, err, ErrFileFormat)
}

func TestLoadEnv_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file permissions work differently on Windows")
	}

	tmpFile, err := os.CreateTemp("", "test*.env")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	err = tmpFile.Chmod(0222)
	require.NoError(t, err)
	tmpFile.Close()

	os.Args = []string{"cmd", "--config=" + tmpFile.Name()}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	err = LoadEnv()
	assert.True(t, os.IsPermission(err))
}
