package common

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"igv/api/models"

	yaml "gopkg.in/yaml.v2"
)

const (
	BrowsersPath       string = "/browsers"
	BrowserPath        string = "/browsers/%s"
	BrowserTracksPath  string = "/browsers/%s/tracks"
	BrowserSearchPath  string = "/browsers/%s/search?symbol=%s"
	BrowserEventsPath  string = "/browsers/%s/events"
	TracksResolvePath  string = "/tracks/resolve"
	GenomePath         string = "/genomes/%s"
	BrowserMessagePath string = "/browsers/%s/messages"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}
