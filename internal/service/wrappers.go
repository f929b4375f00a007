package service

// AuthServiceWrapper decorates an AuthService with extra behavior such as
// request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}

type TagServiceWrapper interface {
	Wrap(TagService) TagService
}

type ActivityServiceWrapper interface {
	Wrap(ActivityService) ActivityService
}

type StatsServiceWrapper interface {
	Wrap(StatsService) StatsService
}
