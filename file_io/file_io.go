package file_io

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func IsReadable(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer file.Close()
	return true
}

func Exists(inputFilePath string) bool {
	info, err := os.Stat(inputFilePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

type FileInfo struct {
	Size       uint64
	ModifiedAt time.Time
}

// return filesize in bytes and last modified timestamp
func GetFileInfo(inputFilePath string) (*FileInfo, error) {
	stat, err := os.Stat(inputFilePath)
	if err != nil {
		return nil, err
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("could not find size: %s is a directory", inputFilePath)
	}
	return &FileInfo{Size: uint64(stat.Size()), ModifiedAt: stat.ModTime()}, nil
}

type WriteMode uint8

const (
	WRITE_APPEND WriteMode = iota
	WRITE_OVERWRITE
)

func WriteToFile(filePath string, data []byte, mode WriteMode) (int, error) {
	var flags int
	switch mode {
	case WRITE_APPEND:
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	case WRITE_OVERWRITE:
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	parent := filepath.Dir(filePath)
	err := os.MkdirAll(parent, os.ModePerm)
	if err != nil {
		return 0, err
	}
	file, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return file.Write(data)
}
