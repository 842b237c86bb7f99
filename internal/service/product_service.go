package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/seuristic/image-ecommerce/internal/cache"
	"github.com/seuristic/image-ecommerce/internal/domain"
	"github.com/seuristic/image-ecommerce/internal/repository"
	"golang.org/x/sync/singleflight"
)

type ProductService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewProductService(repo repository.ProductRepository, cache cache.ProductCache) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
	}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do("products:all", func() (interface{}, error) {
		products, err := s.cache.GetList(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		products, err = s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.SetList(context.Background(), products); err != nil {
				log.Printf("cache set error: %v", err)
			}
		}()

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	v, err, _ := s.sfg.Do("products:"+id, func() (interface{}, error) {
		product, err := s.cache.GetProduct(ctx, id)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err)
		}

		product, err = s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}

		go func() {
			if err := s.cache.SetProduct(context.Background(), product); err != nil {
				log.Printf("cache set error: %v", err)
			}
		}()

		return product, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache()
	return product, nil
}

func (s *ProductService) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
