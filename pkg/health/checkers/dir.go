package checkers

import (
	"context"
	"fmt"
	"os"
)

// DirChecker проверяет, что каталог экспорта карточек существует.
type DirChecker struct {
	dir string
}

func NewDirChecker(dir string) *DirChecker {
	return &DirChecker{dir: dir}
}

func (c *DirChecker) Name() string { return "cards_dir" }

func (c *DirChecker) Check(_ context.Context) error {
	info, err := os.Stat(c.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", c.dir)
	}
	return nil
}
