package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-jumpmaze/api/identity"
	"github.com/beka-birhanu/vinom-jumpmaze/service"
	"github.com/beka-birhanu/vinom-jumpmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller serves maze solving and storage.
type Controller struct {
	solver i.MazeSolver
	repo   i.MazeRepo
	batch  i.BatchSubmitter
	logger i.Logger
}

// NewController initializes a Controller. batch may be nil, in which case stored mazes are not queued.
func NewController(solver i.MazeSolver, repo i.MazeRepo, batch i.BatchSubmitter, logger i.Logger) (*Controller, error) {
	switch {
	case solver == nil:
		return nil, service.ErrNilSolver
	case repo == nil:
		return nil, service.ErrNilRepo
	case logger == nil:
		return nil, service.ErrNilLogger
	}

	return &Controller{
		solver: solver,
		repo:   repo,
		batch:  batch,
		logger: logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/solve", mc.solve)
	route.GET("/mazes/:ID", mc.solveStored)
}

// RegisterProtected registers routes that need a submitter token.
func (mc *Controller) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes", mc.store)
}

// solve runs both searches over the maze in the request body.
func (mc *Controller) solve(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := request.toMaze()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := mc.solver.Solve(uuid.New(), m)
	ctx.JSON(http.StatusOK, newSolveResponse(report))
}

// solveStored loads a stored maze and solves it.
func (mc *Controller) solveStored(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	m, err := mc.repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		mc.logger.Error(fmt.Sprintf("Loading maze %s: %s", id, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(mc.solver.Solve(id, m)))
}

// store saves the maze in the request body and queues it for batch solving.
func (mc *Controller) store(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := request.toMaze()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.New()
	if err := mc.repo.Save(ctx, id, m); err != nil {
		mc.logger.Error(fmt.Sprintf("Saving maze %s: %s", id, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while saving maze"})
		return
	}

	mc.logger.Info(fmt.Sprintf("Maze %s stored by %s", id, ctx.GetString(identity.ContextSubject)))

	queued := false
	if mc.batch != nil {
		if err := mc.batch.Submit(context.Background(), id); err != nil {
			mc.logger.Warning(fmt.Sprintf("Queueing maze %s: %s", id, err))
		} else {
			queued = true
		}
	}

	ctx.JSON(http.StatusCreated, &StoreResponse{ID: id.String(), Queued: queued})
}
