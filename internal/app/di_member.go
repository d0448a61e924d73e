package app

import (
	"fmt"

	memberHTTP "github.com/sijosaji/kitchensink/internal/member/http"
	memberRepository "github.com/sijosaji/kitchensink/internal/member/repository"
	memberUseCase "github.com/sijosaji/kitchensink/internal/member/usecase"
	sequenceRepository "github.com/sijosaji/kitchensink/internal/sequence/repository"
	sequenceUseCase "github.com/sijosaji/kitchensink/internal/sequence/usecase"
)

// SequenceUseCase returns the sequence allocator.
func (c *Container) SequenceUseCase() (sequenceUseCase.UseCase, error) {
	var err error
	c.sequenceUseCaseInit.Do(func() {
		c.sequenceUseCase, err = c.initSequenceUseCase()
		if err != nil {
			c.initErrors["sequenceUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sequenceUseCase"]; exists {
		return nil, storedErr
	}
	return c.sequenceUseCase, nil
}

// MemberRepository returns the member repository.
func (c *Container) MemberRepository() (memberUseCase.MemberRepository, error) {
	var err error
	c.memberRepoInit.Do(func() {
		c.memberRepo, err = c.initMemberRepository()
		if err != nil {
			c.initErrors["memberRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["memberRepo"]; exists {
		return nil, storedErr
	}
	return c.memberRepo, nil
}

// MemberUseCase returns the member use case.
func (c *Container) MemberUseCase() (memberUseCase.MemberUseCase, error) {
	var err error
	c.memberUseCaseInit.Do(func() {
		c.memberUseCase, err = c.initMemberUseCase()
		if err != nil {
			c.initErrors["memberUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["memberUseCase"]; exists {
		return nil, storedErr
	}
	return c.memberUseCase, nil
}

// MemberHandler returns the member HTTP handler.
func (c *Container) MemberHandler() (*memberHTTP.MemberHandler, error) {
	var err error
	c.memberHandlerInit.Do(func() {
		c.memberHandler, err = c.initMemberHandler()
		if err != nil {
			c.initErrors["memberHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["memberHandler"]; exists {
		return nil, storedErr
	}
	return c.memberHandler, nil
}

func (c *Container) initSequenceUseCase() (sequenceUseCase.UseCase, error) {
	db, err := c.MongoDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for sequence use case: %w", err)
	}
	return sequenceUseCase.NewSequenceUseCase(sequenceRepository.NewMongoCounterRepository(db), c.Logger()), nil
}

func (c *Container) initMemberRepository() (memberUseCase.MemberRepository, error) {
	db, err := c.MongoDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for member repository: %w", err)
	}
	return memberRepository.NewMongoMemberRepository(db), nil
}

// initMemberUseCase creates the member use case, wrapped with metrics if enabled.
func (c *Container) initMemberUseCase() (memberUseCase.MemberUseCase, error) {
	memberRepo, err := c.MemberRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get member repository for member use case: %w", err)
	}

	sequence, err := c.SequenceUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get sequence use case for member use case: %w", err)
	}

	baseUseCase := memberUseCase.NewMemberUseCase(memberRepo, sequence, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for member use case: %w", err)
		}
		return memberUseCase.NewMemberUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initMemberHandler() (*memberHTTP.MemberHandler, error) {
	useCase, err := c.MemberUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get member use case for member handler: %w", err)
	}
	return memberHTTP.NewMemberHandler(useCase, c.Logger()), nil
}
