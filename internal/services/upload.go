package services

import (
	"context"
	"io"
	"sync"

	"luxemart/internal/models"
	"luxemart/internal/uploader"
)

// uploadAll fans the files out to the gateway concurrently and joins before
// proceeding. One failure fails the batch; uploads that already completed are
// not retracted from the gateway (the orphaned remote files are an accepted
// inconsistency, since gateway calls are not transactional with the database
// write). Result order matches input order.
func uploadAll(ctx context.Context, up uploader.Uploader, files []io.Reader, folder string) ([]models.Photo, error) {
	photos := make([]models.Photo, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f io.Reader) {
			defer wg.Done()
			photos[i], errs[i] = up.Upload(ctx, f, folder)
		}(i, f)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return photos, nil
}
