// Package reconcile сверяет нефинальные счета переводов с WeChat Pay.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/service"
	"github.com/fsdevblog/wepay-checkin/internal/transport/wxpay"
)

const (
	defaultServiceTimeout         = 5 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultLimitPerIteration uint = 50
	defaultWorkers           uint = 5
	defaultPollInterval           = 30 * time.Second
	defaultRecheckAfter           = time.Minute
)

// Processor периодически запрашивает в WeChat Pay статусы ещё не финальных счетов.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	pollInterval      time.Duration
	recheckAfter      time.Duration
}

func New(svs Servicer, client Client, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "reconcile",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		pollInterval:      defaultPollInterval,
		recheckAfter:      defaultRecheckAfter,
	}
}

// SetLimitPerIteration устанавливает кол-во счетов в одной итерации. Ноль оставляет текущее значение.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetPollInterval устанавливает паузу после пустой итерации. Она же интервал повторной проверки счёта.
func (p *Processor) SetPollInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.pollInterval = interval
		p.recheckAfter = interval
	}
	return p
}

// Run сверяет счета в цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации запрашивает через сервисный слой счета, не проверявшиеся за интервал повторной проверки.
//  2. Счета раздаются воркерам, которые параллельно запрашивают WeChat Pay.
//  3. Результаты одной пачкой уходят в сервисный слой.
//
// После пустой или неудачной итерации цикл спит poll interval с разбросом 15%.
func (p *Processor) Run(ctx context.Context) error {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
		"pollInterval":      p.pollInterval.String(),
	}).Info("Starting")

	for {
		err := p.process(ctx)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNoBills) {
			p.l.WithError(err).Error("process error")
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return nil
		case <-time.After(jitter(p.pollInterval, defaultJitterPercent)):
		}
	}
}

// process выполняет одну итерацию. Возвращает ErrNoBills, если обрабатывать нечего.
func (p *Processor) process(ctx context.Context) error {
	bills, billsErr := p.produce(ctx)
	if billsErr != nil {
		return fmt.Errorf("process: %w", billsErr)
	}

	results := p.runWorkers(ctx, bills)
	if len(results) == 0 {
		return nil
	}
	if ctx.Err() != nil {
		return fmt.Errorf("process: %w", ctx.Err())
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if applyErr := p.svs.ApplyReconcile(reqCtx, results); applyErr != nil {
		return fmt.Errorf("process: %w", applyErr)
	}
	return nil
}

// runWorkers раздаёт счета воркерам и собирает их результаты.
func (p *Processor) runWorkers(ctx context.Context, bills []domain.TransferBill) []service.ReconcileResult {
	var taskCh = make(chan *domain.TransferBill, len(bills))
	for i := range bills {
		taskCh <- &bills[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	var resultCh = make(chan *workerResult, len(bills))

	for i := range p.workers {
		wg.Add(1)
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]service.ReconcileResult, 0, len(bills))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":    result.WorkerID,
			"outBillNo": result.Bill.OutBillNo,
		})
		if result.Error != nil {
			l.WithError(result.Error).Warn("query bill")
		} else {
			l.WithField("state", result.Remote.State).Debug("Queried")
		}
		results = append(results, service.ReconcileResult{
			Bill:   *result.Bill,
			Remote: result.Remote,
			Error:  result.Error,
		})
	}
	return results
}

type workerResult struct {
	WorkerID uint
	Bill     *domain.TransferBill
	Remote   *wxpay.Bill
	Error    error
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.TransferBill,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask запрашивает один счёт. На 429 ждёт Retry-After и повторяет.
func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *domain.TransferBill) *workerResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		remote, err := p.client.QueryByOutBillNo(reqCtx, task.OutBillNo)
		cancel()

		if err == nil {
			return &workerResult{WorkerID: workerID, Bill: task, Remote: remote}
		}

		var tooManyReq *wxpay.TooManyRequestsError
		if !errors.As(err, &tooManyReq) {
			return &workerResult{WorkerID: workerID, Bill: task, Error: err}
		}
		select {
		case <-ctx.Done():
			return &workerResult{WorkerID: workerID, Bill: task, Error: ctx.Err()}
		case <-time.After(tooManyReq.RetryAfter):
		}
	}
}

func (p *Processor) produce(ctx context.Context) ([]domain.TransferBill, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	bills, billsErr := p.svs.BillsForReconcile(produceCtx, p.limitPerIteration, p.recheckAfter)
	if billsErr != nil {
		return nil, fmt.Errorf("produce: %w", billsErr)
	}

	if len(bills) == 0 {
		return nil, ErrNoBills
	}
	return bills, nil
}
