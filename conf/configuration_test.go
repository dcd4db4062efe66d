package conf

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigWithOverrides(t *testing.T) {
	original := Configuration{}
	original.DB.Driver = "db-driver"
	original.DB.ConnURL = "conn-url"
	original.DB.Namespace = "test"
	original.Log.Level = "debug"

	tmpfile, err := ioutil.TempFile("", "gozones-test")
	assert.Nil(t, err)

	fname := tmpfile.Name() + ".json"
	err = os.Rename(tmpfile.Name(), fname)
	assert.Nil(t, err)
	defer os.Remove(fname)

	content, err := json.Marshal(&original)
	assert.Nil(t, err)

	err = ioutil.WriteFile(fname, content, 0755)
	assert.Nil(t, err)

	// override some values
	os.Setenv("GOZONES_DB_DRIVER", "env-db-driver")
	os.Setenv("GOZONES_LOG_LEVEL", "warn")
	defer os.Unsetenv("GOZONES_DB_DRIVER")
	defer os.Unsetenv("GOZONES_LOG_LEVEL")

	config, err := Load(fname)
	assert.Nil(t, err)
	assert.NotNil(t, config)

	// check we loaded from the file
	assert.Equal(t, config.DB.ConnURL, original.DB.ConnURL)
	assert.Equal(t, config.DB.Namespace, original.DB.Namespace)

	// check we got the overrides
	assert.Equal(t, "env-db-driver", config.DB.Driver)
	assert.Equal(t, "warn", config.Log.Level)
}
