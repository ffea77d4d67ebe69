package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Image-Hosting/internal/dto"
	"github.com/andreyxaxa/Image-Hosting/internal/usecase"
	"github.com/andreyxaxa/Image-Hosting/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// EventConsumer is the slice of the kafka event stream the controller needs.
type EventConsumer interface {
	ReadEvent(ctx context.Context) (kafka.Message, error)
	CommitEvent(ctx context.Context, event kafka.Message) error
	Close() error
}

// ThumbnailController consumes image-created events and drives thumbnail
// generation. It never propagates a processing failure: a broken original
// must not block ingestion of unrelated objects, so every event is committed
// exactly once regardless of outcome and errors only reach the log.
type ThumbnailController struct {
	thumb  usecase.ThumbnailUseCase
	ec     EventConsumer
	logger logger.Interface

	commitTimeout  time.Duration
	processTimeout time.Duration
	cpuTimeout     time.Duration

	workers int
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	started atomic.Bool
}

func New(
	thumb usecase.ThumbnailUseCase,
	ec EventConsumer,
	l logger.Interface,
	commitTimeout time.Duration,
	processTimeout time.Duration,
	cpuTimeout time.Duration,
	workers int,
) *ThumbnailController {
	return &ThumbnailController{
		thumb:          thumb,
		ec:             ec,
		logger:         l,
		commitTimeout:  commitTimeout,
		processTimeout: processTimeout,
		cpuTimeout:     cpuTimeout,
		workers:        workers,
	}
}

func (c *ThumbnailController) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("ThumbnailController - Start - controller already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)

	// канал для задач
	tasks := make(chan kafka.Message, c.workers*2)

	// запускаем воркеры
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(tasks)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(tasks)

		for {
			select {
			case <-c.ctx.Done():
				return
			default:
				// 1. читаем из кафки
				event, err := c.ec.ReadEvent(c.ctx)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						c.logger.Error(err, "ThumbnailController - Start - c.ec.ReadEvent")
					}
					continue
				}

				// 2. отправляем в канал для воркеров
				select {
				case tasks <- event:
				case <-c.ctx.Done():
					return
				}
			}
		}
	}()

	return nil
}

func (c *ThumbnailController) generateThumbnail(ctx context.Context, event kafka.Message) error {
	var payload dto.ImageCreated
	err := json.Unmarshal(event.Value, &payload)
	if err != nil {
		return fmt.Errorf("ThumbnailController - generateThumbnail - json.Unmarshal: %w", err)
	}

	cpuCtx, cpuCancel := context.WithTimeout(ctx, c.cpuTimeout)
	defer cpuCancel()

	err = c.thumb.Generate(cpuCtx, payload.Key)
	if err != nil {
		return fmt.Errorf("ThumbnailController - generateThumbnail - c.thumb.Generate: %w", err)
	}

	return nil
}

func (c *ThumbnailController) worker(tasks <-chan kafka.Message) {
	defer c.wg.Done()

	// читаем канал, пока не закроется
	for event := range tasks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logger.Error(fmt.Errorf("panic %v", r), "ThumbnailController - worker - panic")
				}
			}()

			// выполняем обработку; ошибка гасится здесь - событие
			// однократное, ретраев нет
			processCtx, processCancel := context.WithTimeout(c.ctx, c.processTimeout)
			err := c.generateThumbnail(processCtx, event)
			processCancel()
			if err != nil {
				c.logger.Error(err, "ThumbnailController - worker - c.generateThumbnail")
			}

			// коммитим независимо от исхода
			commitCtx, commitCancel := context.WithTimeout(c.ctx, c.commitTimeout)
			err = c.ec.CommitEvent(commitCtx, event)
			commitCancel()
			if err != nil {
				c.logger.Error(err, "ThumbnailController - worker - c.ec.CommitEvent")
			}
		}()
	}
}

func (c *ThumbnailController) Shutdown(ctx context.Context) error {
	if !c.started.Load() {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		c.ec.Close()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return nil
	}
}
