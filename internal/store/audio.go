package store

import (
	"context"
	"fmt"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
)

type audioRepo struct {
	client *ent.Client
}

func (r *audioRepo) Create(ctx context.Context, a AudioAsset) (*AudioAsset, error) {
	row, err := r.client.AudioAsset.Create().
		SetFileName(a.FileName).
		SetStoredName(a.StoredName).
		SetContentType(a.ContentType).
		SetSizeBytes(a.SizeBytes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create audio asset: %w", err)
	}
	return audioFromEnt(row), nil
}

func (r *audioRepo) List(ctx context.Context) ([]*AudioAsset, error) {
	rows, err := r.client.AudioAsset.Query().
		Order(ent.Desc(audioasset.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audio assets: %w", err)
	}
	out := make([]*AudioAsset, len(rows))
	for i, row := range rows {
		out[i] = audioFromEnt(row)
	}
	return out, nil
}

func (r *audioRepo) Get(ctx context.Context, id int) (*AudioAsset, error) {
	row, err := r.client.AudioAsset.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get audio asset: %w", err)
	}
	return audioFromEnt(row), nil
}

func audioFromEnt(row *ent.AudioAsset) *AudioAsset {
	return &AudioAsset{
		ID:          row.ID,
		FileName:    row.FileName,
		StoredName:  row.StoredName,
		ContentType: row.ContentType,
		SizeBytes:   row.SizeBytes,
		UploadedAt:  row.UploadedAt,
	}
}
